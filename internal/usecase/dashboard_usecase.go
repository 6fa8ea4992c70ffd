package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/isabitech/branchbooks/internal/domain"
)

// dashboardFanOutLimit caps concurrent upstream reads during the
// consolidated fan-out.
const dashboardFanOutLimit = 8

// BranchStanding is one branch's line on the consolidated dashboard.
type BranchStanding struct {
	BranchID   string
	BranchName string
	BranchCode string
	Status     RowStatus
	OnlineCIH  *Metric
	TSO        *Metric
	Submitted  bool
}

// DashboardTotals aggregates the reported branches. Branches that have
// not reported or failed to load are excluded, never zero-filled.
type DashboardTotals struct {
	Collections   Metric
	Disbursements Metric
	OnlineCIH     Metric
	TSO           Metric
}

// ConsolidatedDashboard is the head-office view for one date.
type ConsolidatedDashboard struct {
	Date             string
	Branches         []BranchStanding
	Totals           DashboardTotals
	BranchesReported int
	BranchCount      int
	Completion       Completion
}

// DashboardUseCase assembles the head-office consolidated dashboard.
type DashboardUseCase struct {
	src      ResourceSource
	fetcher  *Fetcher
	branches *BranchUseCase
	clock    Clock
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(src ResourceSource, fetcher *Fetcher, branches *BranchUseCase, clock Clock) *DashboardUseCase {
	return &DashboardUseCase{src: src, fetcher: fetcher, branches: branches, clock: clock}
}

// Consolidated fans out over every active branch concurrently and folds
// the reported operations into one dashboard. A single branch failing or
// not having reported never fails the whole view.
func (uc *DashboardUseCase) Consolidated(ctx context.Context, date string, refresh bool) (*ConsolidatedDashboard, error) {
	if date == "" {
		return nil, domain.ErrMissingKey
	}
	if _, err := domain.ParseDate(date, uc.clock.Now()); err != nil {
		return nil, err
	}

	active, err := uc.branches.ListActive(ctx, refresh)
	if err != nil {
		return nil, err
	}

	results := make([]Result[domain.DailyOperation], len(active))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dashboardFanOutLimit)
	for i, b := range active {
		g.Go(func() error {
			results[i] = fetchResource(gctx, uc.fetcher, "operation", "op:"+b.ID+":"+date, uc.fetcher.cfg.VolatileTTL, refresh,
				func(ctx context.Context) (*domain.DailyOperation, error) { return uc.src.DailyOperation(ctx, b.ID, date) })
			return nil
		})
	}
	_ = g.Wait()

	return buildDashboard(date, active, results), nil
}

func buildDashboard(date string, branches []domain.Branch, results []Result[domain.DailyOperation]) *ConsolidatedDashboard {
	d := &ConsolidatedDashboard{
		Date:        date,
		BranchCount: len(branches),
	}

	collections := decimal.Zero
	disbursements := decimal.Zero
	onlineCIH := decimal.Zero
	tso := decimal.Zero

	reportedFlags := make([]bool, len(branches))
	for i, b := range branches {
		res := results[i]
		standing := BranchStanding{
			BranchID:   b.ID,
			BranchName: b.Name,
			BranchCode: b.Code,
		}

		switch res.State {
		case StateReady:
			op := res.Data
			standing.Status = RowReady
			standing.OnlineCIH = metricOf(op.OnlineCIH)
			standing.TSO = metricOf(op.TSO)
			standing.Submitted = op.Submitted()

			reportedFlags[i] = true
			d.BranchesReported++
			onlineCIH = onlineCIH.Add(op.OnlineCIH)
			tso = tso.Add(op.TSO)
			if op.Cashbook1 != nil {
				collections = collections.Add(op.Cashbook1.CBTotal1)
			}
			if op.Cashbook2 != nil {
				disbursements = disbursements.Add(op.Cashbook2.CBTotal2)
			}
		case StateEmpty:
			standing.Status = RowPending
		default:
			standing.Status = RowUnavailable
		}

		d.Branches = append(d.Branches, standing)
	}

	d.Totals = DashboardTotals{
		Collections:   *metricOf(collections),
		Disbursements: *metricOf(disbursements),
		OnlineCIH:     *metricOf(onlineCIH),
		TSO:           *metricOf(tso),
	}

	missing := make([]string, 0)
	for i, b := range branches {
		if !reportedFlags[i] {
			missing = append(missing, b.Name)
		}
	}
	d.Completion.Percentage = domain.CompletionPercentage(reportedFlags)
	d.Completion.Complete = domain.OverallComplete(reportedFlags)
	d.Completion.Missing = missing

	return d
}
