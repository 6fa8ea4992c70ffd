package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
)

// DisbursementRollSummary is the monthly disbursement roll screen for one
// branch-month.
type DisbursementRollSummary struct {
	BranchID   string
	Month      string
	Year       string
	Rows       []Row
	NetChange  Metric
	GrowthRate decimal.Decimal
}

// DisbursementUseCase assembles monthly disbursement roll summaries.
type DisbursementUseCase struct {
	src     ResourceSource
	fetcher *Fetcher
	clock   Clock
}

// NewDisbursementUseCase creates a new DisbursementUseCase.
func NewDisbursementUseCase(src ResourceSource, fetcher *Fetcher, clock Clock) *DisbursementUseCase {
	return &DisbursementUseCase{src: src, fetcher: fetcher, clock: clock}
}

// MonthlySummary returns the disbursement roll summary, or (nil, nil)
// when no roll exists yet for the branch-month.
func (uc *DisbursementUseCase) MonthlySummary(ctx context.Context, branchID, month, year string, refresh bool) (*DisbursementRollSummary, error) {
	if branchID == "" {
		return nil, domain.ErrMissingKey
	}
	month, year, err := domain.ParseMonthYear(month, year, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	res := fetchResource(ctx, uc.fetcher, "disbursementroll", "roll:"+branchID+":"+year+"-"+month, uc.fetcher.cfg.MonthlyTTL, refresh,
		func(ctx context.Context) (*domain.DisbursementRoll, error) {
			return uc.src.DisbursementRoll(ctx, branchID, month, year)
		})
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return nil, nil
	}

	roll := res.Data
	change := domain.NetChange(roll.RollTotal, roll.PreviousDisbursement)

	return &DisbursementRollSummary{
		BranchID: branchID,
		Month:    month,
		Year:     year,
		Rows: []Row{
			valueRow("disbursement-roll", "Previous Month Disbursement", roll.PreviousDisbursement),
			valueRow("disbursement-roll", "Daily Average", roll.DailyAverage),
			valueRow("disbursement-roll", "Disbursement Roll", roll.RollTotal),
			valueRow("derived", "Net Change", change),
		},
		NetChange:  *metricOf(change),
		GrowthRate: domain.GrowthRate(roll.RollTotal, roll.PreviousDisbursement),
	}, nil
}
