package domain

import "errors"

var (
	// Natural-key errors
	ErrMissingKey   = errors.New("natural key is incomplete")
	ErrFutureDate   = errors.New("date is in the future")
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidYear  = errors.New("invalid year")

	// Resource errors
	ErrBranchNotFound    = errors.New("branch not found")
	ErrOperationNotFound = errors.New("daily operation not found")
	ErrUpstream          = errors.New("upstream request failed")

	// Operation lifecycle errors
	ErrAlreadySubmitted = errors.New("daily operation already submitted")

	// Authorization errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrBranchForbidden  = errors.New("branch not accessible for this user")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
