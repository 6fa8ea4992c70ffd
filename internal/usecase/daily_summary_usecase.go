package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/isabitech/branchbooks/internal/domain"
)

// DailySummary is the render-ready daily operations screen for one
// branch-day: raw rows, derived totals and the completion state.
type DailySummary struct {
	BranchID    string
	Date        string
	Rows        []Row
	Totals      DailyTotals
	Completion  Completion
	Submitted   bool
	SubmittedAt *time.Time
}

// DailyTotals holds the derived figures. A nil metric means one of its
// dependencies has not reached the ready state, which is deliberately
// different from a zero value.
type DailyTotals struct {
	OnlineCIH       *Metric
	BankPosition    *Metric
	TSO             *Metric
	LoanMovement    *Metric
	SavingsMovement *Metric
}

// DailySummaryUseCase assembles the per-branch daily summary.
type DailySummaryUseCase struct {
	src     ResourceSource
	fetcher *Fetcher
	clock   Clock
}

// NewDailySummaryUseCase creates a new DailySummaryUseCase.
func NewDailySummaryUseCase(src ResourceSource, fetcher *Fetcher, clock Clock) *DailySummaryUseCase {
	return &DailySummaryUseCase{src: src, fetcher: fetcher, clock: clock}
}

// dailyResources is the joined terminal state of every resource the daily
// summary depends on. Arrival order is unspecified; nothing is derived
// until every member has settled.
type dailyResources struct {
	cb1        Result[domain.Cashbook1]
	cb2        Result[domain.Cashbook2]
	bs1        Result[domain.BankStatement1]
	bs2        Result[domain.BankStatement2]
	loan       Result[domain.LoanRegister]
	savings    Result[domain.SavingsRegister]
	prediction Result[domain.Prediction]
	operation  Result[domain.DailyOperation]
}

// fetchDaily issues all reads for a branch-day concurrently and waits for
// every one to reach a terminal state. Individual failures are carried in
// the per-resource results, never returned as the group error.
func (uc *DailySummaryUseCase) fetchDaily(ctx context.Context, branchID, date string, refresh bool) dailyResources {
	f := uc.fetcher
	ttl := f.cfg.VolatileTTL
	var res dailyResources

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.cb1 = fetchResource(gctx, f, "cashbook1", "cb1:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.Cashbook1, error) { return uc.src.Cashbook1(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.cb2 = fetchResource(gctx, f, "cashbook2", "cb2:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.Cashbook2, error) { return uc.src.Cashbook2(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.bs1 = fetchResource(gctx, f, "bankstatement1", "bs1:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.BankStatement1, error) { return uc.src.BankStatement1(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.bs2 = fetchResource(gctx, f, "bankstatement2", "bs2:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.BankStatement2, error) { return uc.src.BankStatement2(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.loan = fetchResource(gctx, f, "loanregister", "loan:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.LoanRegister, error) { return uc.src.LoanRegister(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.savings = fetchResource(gctx, f, "savingsregister", "savings:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.SavingsRegister, error) { return uc.src.SavingsRegister(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.prediction = fetchResource(gctx, f, "prediction", "prediction:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.Prediction, error) { return uc.src.Prediction(ctx, branchID, date) })
		return nil
	})
	g.Go(func() error {
		res.operation = fetchResource(gctx, f, "operation", "op:"+branchID+":"+date, ttl, refresh,
			func(ctx context.Context) (*domain.DailyOperation, error) { return uc.src.DailyOperation(ctx, branchID, date) })
		return nil
	})
	_ = g.Wait()

	return res
}

// Build returns the daily summary for a branch-day. Both natural-key
// segments are required; nothing is fetched otherwise.
func (uc *DailySummaryUseCase) Build(ctx context.Context, branchID, date string, refresh bool) (*DailySummary, error) {
	if branchID == "" || date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	res := uc.fetchDaily(ctx, branchID, date, refresh)
	return buildDailySummary(branchID, date, res), nil
}

func buildDailySummary(branchID, date string, res dailyResources) *DailySummary {
	s := &DailySummary{BranchID: branchID, Date: date}

	s.Rows = append(s.Rows,
		statusRow(res.cb1, "cashbook", "Cashbook 1 Total (Collections)",
			func(cb *domain.Cashbook1) decimal.Decimal { return cb.CBTotal1 }),
		statusRow(res.cb2, "cashbook", "Cashbook 2 Total (Disbursements)",
			func(cb *domain.Cashbook2) decimal.Decimal { return cb.CBTotal2 }),
		statusRow(res.bs1, "bank-statement", "Bank Statement 1 Total (Inflow)",
			func(bs *domain.BankStatement1) decimal.Decimal { return bs.BS1Total }),
		statusRow(res.bs2, "bank-statement", "Bank Statement 2 Total (Outflow)",
			func(bs *domain.BankStatement2) decimal.Decimal { return bs.BS2Total }),
		statusRow(res.loan, "loan-register", "Current Loan Balance",
			func(r *domain.LoanRegister) decimal.Decimal { return r.CurrentLoanBalance }),
		statusRow(res.savings, "savings-register", "Current Savings Balance",
			func(r *domain.SavingsRegister) decimal.Decimal { return r.CurrentSavingsBalance }),
		statusRow(res.prediction, "prediction", "Estimated Disbursement Tomorrow",
			func(p *domain.Prediction) decimal.Decimal { return p.EstimatedAmount }),
	)

	// Derived totals only exist once every dependency is ready.
	if res.cb1.Ready() && res.cb2.Ready() {
		cih := domain.NetPosition(res.cb1.Data.CBTotal1, res.cb2.Data.CBTotal2)
		s.Totals.OnlineCIH = metricOf(cih)
		s.Rows = append(s.Rows, valueRow("derived", "Online Cash In Hand", cih))
	} else {
		s.Rows = append(s.Rows, pendingRow("derived", "Online Cash In Hand"))
	}

	if res.bs1.Ready() && res.bs2.Ready() {
		pos := domain.NetPosition(res.bs1.Data.BS1Total, res.bs2.Data.BS2Total)
		s.Totals.BankPosition = metricOf(pos)
		s.Rows = append(s.Rows, valueRow("derived", "Bank Position", pos))
	} else {
		s.Rows = append(s.Rows, pendingRow("derived", "Bank Position"))
	}

	if res.loan.Ready() {
		s.Totals.LoanMovement = metricOf(domain.NetChange(res.loan.Data.CurrentLoanBalance, res.loan.Data.PreviousLoanTotal))
	}
	if res.savings.Ready() {
		s.Totals.SavingsMovement = metricOf(domain.NetChange(res.savings.Data.CurrentSavingsBalance, res.savings.Data.PreviousSavingsTotal))
	}
	if res.operation.Ready() {
		s.Totals.TSO = metricOf(res.operation.Data.TSO)
		s.Submitted = res.operation.Data.Submitted()
		s.SubmittedAt = res.operation.Data.SubmittedAt
	}

	required := []struct {
		label string
		ready bool
	}{
		{"Cashbook 1", res.cb1.Ready()},
		{"Cashbook 2", res.cb2.Ready()},
		{"Bank Statement 1", res.bs1.Ready()},
		{"Bank Statement 2", res.bs2.Ready()},
		{"Loan Register", res.loan.Ready()},
		{"Savings Register", res.savings.Ready()},
	}
	flags := make([]bool, len(required))
	for i, r := range required {
		flags[i] = r.ready
		if !r.ready {
			s.Completion.Missing = append(s.Completion.Missing, r.label)
		}
	}
	s.Completion.Percentage = domain.CompletionPercentage(flags)
	s.Completion.Complete = domain.OverallComplete(flags)

	return s
}
