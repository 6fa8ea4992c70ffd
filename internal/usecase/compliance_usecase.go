package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
)

// ComplianceSummary is the shared shape of the planning and compliance
// screens: a previous value, the day's movements, a current value and the
// derived delta.
type ComplianceSummary struct {
	BranchID   string
	Date       string
	Kind       string
	Rows       []Row
	NetChange  Metric
	GrowthRate decimal.Decimal
}

// ComplianceUseCase assembles the EFCC and amount-need-tomorrow screens.
type ComplianceUseCase struct {
	src     ResourceSource
	fetcher *Fetcher
	clock   Clock
}

// NewComplianceUseCase creates a new ComplianceUseCase.
func NewComplianceUseCase(src ResourceSource, fetcher *Fetcher, clock Clock) *ComplianceUseCase {
	return &ComplianceUseCase{src: src, fetcher: fetcher, clock: clock}
}

// EFCCSummary returns the remittance-owing summary, or (nil, nil) when no
// record exists yet for the branch-day.
func (uc *ComplianceUseCase) EFCCSummary(ctx context.Context, branchID, date string, refresh bool) (*ComplianceSummary, error) {
	if branchID == "" || date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	res := fetchResource(ctx, uc.fetcher, "efcc", "efcc:"+branchID+":"+date, uc.fetcher.cfg.VolatileTTL, refresh,
		func(ctx context.Context) (*domain.EFCCRecord, error) { return uc.src.EFCCRecord(ctx, branchID, date) })
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return nil, nil
	}

	rec := res.Data
	change := domain.NetChange(rec.CurrentOwing, rec.PreviousOwing)

	return &ComplianceSummary{
		BranchID: branchID,
		Date:     date,
		Kind:     "efcc",
		Rows: []Row{
			valueRow("efcc", "Previous Owing", rec.PreviousOwing),
			valueRow("efcc", "Amount Remitted", rec.AmountRemitted),
			valueRow("efcc", "New Owing", rec.NewOwing),
			valueRow("efcc", "Current Owing", rec.CurrentOwing),
			valueRow("derived", "Net Change", change),
		},
		NetChange:  *metricOf(change),
		GrowthRate: domain.GrowthRate(rec.CurrentOwing, rec.PreviousOwing),
	}, nil
}

// AmountNeedTomorrowSummary returns the next-day cash planning summary,
// or (nil, nil) when no record exists yet for the branch-day.
func (uc *ComplianceUseCase) AmountNeedTomorrowSummary(ctx context.Context, branchID, date string, refresh bool) (*ComplianceSummary, error) {
	if branchID == "" || date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	res := fetchResource(ctx, uc.fetcher, "amountneedtomorrow", "ant:"+branchID+":"+date, uc.fetcher.cfg.VolatileTTL, refresh,
		func(ctx context.Context) (*domain.AmountNeedTomorrow, error) {
			return uc.src.AmountNeedTomorrow(ctx, branchID, date)
		})
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return nil, nil
	}

	rec := res.Data
	change := domain.NetChange(rec.CurrentAmount, rec.PreviousAmount)

	return &ComplianceSummary{
		BranchID: branchID,
		Date:     date,
		Kind:     "amount-need-tomorrow",
		Rows: []Row{
			valueRow("amount-need-tomorrow", "Previous Amount", rec.PreviousAmount),
			valueRow("amount-need-tomorrow", "Amount Needed", rec.AmountNeeded),
			valueRow("amount-need-tomorrow", "Current Amount", rec.CurrentAmount),
			valueRow("derived", "Net Change", change),
		},
		NetChange:  *metricOf(change),
		GrowthRate: domain.GrowthRate(rec.CurrentAmount, rec.PreviousAmount),
	}, nil
}
