package usecase

import (
	"context"
	"errors"

	"github.com/isabitech/branchbooks/internal/domain"
)

// OperationUseCase handles the daily operation record and the single
// mutation this service owns: submitting a branch-day.
type OperationUseCase struct {
	src     ResourceSource
	fetcher *Fetcher
	cache   Cache
	idGen   IDGenerator
	clock   Clock
}

// NewOperationUseCase creates a new OperationUseCase.
func NewOperationUseCase(src ResourceSource, fetcher *Fetcher, cache Cache, idGen IDGenerator, clock Clock) *OperationUseCase {
	return &OperationUseCase{
		src:     src,
		fetcher: fetcher,
		cache:   cache,
		idGen:   idGen,
		clock:   clock,
	}
}

// Get returns the daily operation record, or (nil, nil) when upstream has
// no record for the branch-day yet.
func (uc *OperationUseCase) Get(ctx context.Context, branchID, date string, refresh bool) (*domain.DailyOperation, error) {
	if branchID == "" || date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	res := fetchResource(ctx, uc.fetcher, "operation", "op:"+branchID+":"+date, uc.fetcher.cfg.VolatileTTL, refresh,
		func(ctx context.Context) (*domain.DailyOperation, error) { return uc.src.DailyOperation(ctx, branchID, date) })
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return nil, nil
	}
	return res.Data, nil
}

// Submit forwards the submit action upstream exactly once and, on
// success, evicts every cached resource of the now-frozen branch-day.
// domain.ErrAlreadySubmitted is final: the caller must not retry it.
func (uc *OperationUseCase) Submit(ctx context.Context, operationID, branchID, date string) error {
	if operationID == "" {
		return domain.ErrMissingKey
	}

	if err := uc.src.SubmitDailyOperation(ctx, operationID, uc.idGen.Generate()); err != nil {
		uc.countSubmit(err)
		return err
	}
	uc.countSubmit(nil)

	if branchID != "" && date != "" {
		suffix := branchID + ":" + date
		_ = uc.cache.Delete(ctx,
			"op:"+suffix,
			"cb1:"+suffix,
			"cb2:"+suffix,
			"bs1:"+suffix,
			"bs2:"+suffix,
			"loan:"+suffix,
			"savings:"+suffix,
			"prediction:"+suffix,
		)
	}
	return nil
}

func (uc *OperationUseCase) countSubmit(err error) {
	if uc.fetcher.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, domain.ErrAlreadySubmitted):
		outcome = "conflict"
	case err != nil:
		outcome = "error"
	}
	uc.fetcher.metrics.SubmitActions.WithLabelValues(outcome).Inc()
}
