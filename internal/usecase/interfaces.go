package usecase

import (
	"context"
	"time"

	"github.com/isabitech/branchbooks/internal/domain"
)

// ResourceSource defines the upstream reads this service depends on. Each
// getter returns (nil, nil) when the upstream system affirmatively reports
// that no record exists yet for the key; that empty state is distinct from
// an error and must stay distinct all the way to the response.
type ResourceSource interface {
	Cashbook1(ctx context.Context, branchID, date string) (*domain.Cashbook1, error)
	Cashbook2(ctx context.Context, branchID, date string) (*domain.Cashbook2, error)
	BankStatement1(ctx context.Context, branchID, date string) (*domain.BankStatement1, error)
	BankStatement2(ctx context.Context, branchID, date string) (*domain.BankStatement2, error)
	LoanRegister(ctx context.Context, branchID, date string) (*domain.LoanRegister, error)
	SavingsRegister(ctx context.Context, branchID, date string) (*domain.SavingsRegister, error)
	DisbursementRoll(ctx context.Context, branchID, month, year string) (*domain.DisbursementRoll, error)
	Prediction(ctx context.Context, branchID, date string) (*domain.Prediction, error)
	EFCCRecord(ctx context.Context, branchID, date string) (*domain.EFCCRecord, error)
	AmountNeedTomorrow(ctx context.Context, branchID, date string) (*domain.AmountNeedTomorrow, error)
	DailyOperation(ctx context.Context, branchID, date string) (*domain.DailyOperation, error)
	Branches(ctx context.Context) ([]domain.Branch, error)
	SubmitDailyOperation(ctx context.Context, operationID, idempotencyKey string) error
}

// Cache defines the resource cache. A miss is reported via the bool
// result, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// IdempotencyStore handles request idempotency for the submit endpoint.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time, so future-date rejection is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
