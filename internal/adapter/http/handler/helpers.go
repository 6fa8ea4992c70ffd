package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/adapter/http/middleware"
	"github.com/isabitech/branchbooks/internal/domain"
)

// defaultDate fills an omitted date with today's date in UTC.
func defaultDate(date string) string {
	if date == "" {
		return time.Now().UTC().Format(domain.DateLayout)
	}
	return date
}

// writeData writes a successful enveloped JSON response.
func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Envelope{Success: true, Data: data})
}

// writeError writes an error response in the same envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Envelope{Success: false, Message: message})
}

// writeDomainError maps a domain error to a status and writes it.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, mapDomainError(err), err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingKey),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrFutureDate),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBranchForbidden),
		errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBranchNotFound),
		errors.Is(err, domain.ErrOperationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// authorizeBranch checks that the caller may read records for branchID.
// Requests without claims pass: the auth middleware already rejected
// unauthenticated traffic when auth is enabled.
func authorizeBranch(r *http.Request, branchID string) error {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		return nil
	}
	if !claims.Capabilities().CanViewBranch(branchID) {
		return domain.ErrBranchForbidden
	}
	return nil
}

// authorizeDashboard checks the head-office-only dashboard capability.
func authorizeDashboard(r *http.Request) error {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		return nil
	}
	if !claims.Capabilities().ViewDashboard {
		return domain.ErrInsufficientRole
	}
	return nil
}

// authorizeSubmit checks that the caller may submit for branchID.
func authorizeSubmit(r *http.Request, branchID string) error {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		return nil
	}

	caps := claims.Capabilities()
	if !caps.SubmitOperation {
		return domain.ErrInsufficientRole
	}
	if !caps.CanViewBranch(branchID) {
		return domain.ErrBranchForbidden
	}
	return nil
}
