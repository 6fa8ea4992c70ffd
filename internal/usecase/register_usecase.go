package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
)

// LoanRegisterSummary is the loan register screen for one branch-day.
type LoanRegisterSummary struct {
	BranchID       string
	Date           string
	Rows           []Row
	NetChange      Metric
	GrowthRate     decimal.Decimal
	CollectionRate decimal.Decimal
}

// SavingsRegisterSummary is the savings register screen for one branch-day.
type SavingsRegisterSummary struct {
	BranchID   string
	Date       string
	Rows       []Row
	NetChange  Metric
	GrowthRate decimal.Decimal
}

// RegisterUseCase assembles loan and savings register summaries.
type RegisterUseCase struct {
	src     ResourceSource
	fetcher *Fetcher
	clock   Clock
}

// NewRegisterUseCase creates a new RegisterUseCase.
func NewRegisterUseCase(src ResourceSource, fetcher *Fetcher, clock Clock) *RegisterUseCase {
	return &RegisterUseCase{src: src, fetcher: fetcher, clock: clock}
}

// LoanSummary returns the loan register summary, or (nil, nil) when no
// register exists yet for the branch-day.
func (uc *RegisterUseCase) LoanSummary(ctx context.Context, branchID, date string, refresh bool) (*LoanRegisterSummary, error) {
	if branchID == "" || date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	res := fetchResource(ctx, uc.fetcher, "loanregister", "loan:"+branchID+":"+date, uc.fetcher.cfg.VolatileTTL, refresh,
		func(ctx context.Context) (*domain.LoanRegister, error) { return uc.src.LoanRegister(ctx, branchID, date) })
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return nil, nil
	}

	reg := res.Data
	change := domain.NetChange(reg.CurrentLoanBalance, reg.PreviousLoanTotal)

	return &LoanRegisterSummary{
		BranchID: branchID,
		Date:     date,
		Rows: []Row{
			valueRow("loan-register", "Previous Loan Total", reg.PreviousLoanTotal),
			valueRow("loan-register", "Disbursement With Interest", reg.LoanDisbursementWithInterest),
			valueRow("loan-register", "Loan Collection", reg.LoanCollection),
			valueRow("loan-register", "Current Loan Balance", reg.CurrentLoanBalance),
			valueRow("derived", "Net Change", change),
		},
		NetChange:      *metricOf(change),
		GrowthRate:     domain.GrowthRate(reg.CurrentLoanBalance, reg.PreviousLoanTotal),
		CollectionRate: domain.CollectionRate(reg.LoanCollection, reg.PreviousLoanTotal),
	}, nil
}

// SavingsSummary returns the savings register summary, or (nil, nil) when
// no register exists yet for the branch-day.
func (uc *RegisterUseCase) SavingsSummary(ctx context.Context, branchID, date string, refresh bool) (*SavingsRegisterSummary, error) {
	if branchID == "" || date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	res := fetchResource(ctx, uc.fetcher, "savingsregister", "savings:"+branchID+":"+date, uc.fetcher.cfg.VolatileTTL, refresh,
		func(ctx context.Context) (*domain.SavingsRegister, error) { return uc.src.SavingsRegister(ctx, branchID, date) })
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return nil, nil
	}

	reg := res.Data
	change := domain.NetChange(reg.CurrentSavingsBalance, reg.PreviousSavingsTotal)

	return &SavingsRegisterSummary{
		BranchID: branchID,
		Date:     date,
		Rows: []Row{
			valueRow("savings-register", "Previous Savings Total", reg.PreviousSavingsTotal),
			valueRow("savings-register", "New Deposits", reg.NewDeposits),
			valueRow("savings-register", "Withdrawals", reg.Withdrawals),
			valueRow("savings-register", "Current Savings Balance", reg.CurrentSavingsBalance),
			valueRow("derived", "Net Change", change),
		},
		NetChange:  *metricOf(change),
		GrowthRate: domain.GrowthRate(reg.CurrentSavingsBalance, reg.PreviousSavingsTotal),
	}, nil
}
