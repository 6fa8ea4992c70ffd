package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/usecase"
	"github.com/isabitech/branchbooks/internal/usecase/mocks"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newFetcher(cache usecase.Cache) *usecase.Fetcher {
	return usecase.NewFetcher(cache, usecase.FetcherConfig{
		VolatileTTL:   time.Minute,
		BranchListTTL: 5 * time.Minute,
		MonthlyTTL:    10 * time.Minute,
	}, nil)
}

func fullDailySource() *mocks.MockResourceSource {
	src := mocks.NewMockResourceSource()
	src.Cashbook1Func = func(ctx context.Context, branchID, date string) (*domain.Cashbook1, error) {
		return &domain.Cashbook1{BranchID: branchID, Date: date, CBTotal1: decimal.NewFromInt(150000)}, nil
	}
	src.Cashbook2Func = func(ctx context.Context, branchID, date string) (*domain.Cashbook2, error) {
		return &domain.Cashbook2{BranchID: branchID, Date: date, CBTotal2: decimal.NewFromInt(95000)}, nil
	}
	src.BankStatement1Func = func(ctx context.Context, branchID, date string) (*domain.BankStatement1, error) {
		return &domain.BankStatement1{BranchID: branchID, Date: date, BS1Total: decimal.NewFromInt(200000)}, nil
	}
	src.BankStatement2Func = func(ctx context.Context, branchID, date string) (*domain.BankStatement2, error) {
		return &domain.BankStatement2{BranchID: branchID, Date: date, BS2Total: decimal.NewFromInt(180000)}, nil
	}
	src.LoanRegisterFunc = func(ctx context.Context, branchID, date string) (*domain.LoanRegister, error) {
		return &domain.LoanRegister{
			BranchID:           branchID,
			Date:               date,
			PreviousLoanTotal:  decimal.NewFromInt(200000),
			CurrentLoanBalance: decimal.NewFromInt(220000),
		}, nil
	}
	src.SavingsRegisterFunc = func(ctx context.Context, branchID, date string) (*domain.SavingsRegister, error) {
		return &domain.SavingsRegister{
			BranchID:              branchID,
			Date:                  date,
			PreviousSavingsTotal:  decimal.NewFromInt(100000),
			CurrentSavingsBalance: decimal.NewFromInt(95000),
		}, nil
	}
	src.PredictionFunc = func(ctx context.Context, branchID, date string) (*domain.Prediction, error) {
		return &domain.Prediction{BranchID: branchID, Date: date, EstimatedAmount: decimal.NewFromInt(75000)}, nil
	}
	return src
}

func findRow(t *testing.T, rows []usecase.Row, label string) usecase.Row {
	t.Helper()
	for _, row := range rows {
		if row.Label == label {
			return row
		}
	}
	t.Fatalf("row %q not found", label)
	return usecase.Row{}
}

func TestDailySummaryUseCase_Build_DerivedTotals(t *testing.T) {
	src := fullDailySource()
	uc := usecase.NewDailySummaryUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	s, err := uc.Build(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Totals.OnlineCIH == nil {
		t.Fatal("expected online CIH")
	}
	if !s.Totals.OnlineCIH.Value.Equal(decimal.NewFromInt(55000)) {
		t.Errorf("expected online CIH 55000, got %s", s.Totals.OnlineCIH.Value)
	}
	if s.Totals.OnlineCIH.Tag != domain.TagSurplus {
		t.Errorf("expected surplus tag, got %s", s.Totals.OnlineCIH.Tag)
	}

	if s.Totals.BankPosition == nil || !s.Totals.BankPosition.Value.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected bank position 20000, got %+v", s.Totals.BankPosition)
	}
	if s.Totals.LoanMovement == nil || !s.Totals.LoanMovement.Value.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected loan movement 20000, got %+v", s.Totals.LoanMovement)
	}
	if s.Totals.SavingsMovement == nil || !s.Totals.SavingsMovement.Value.Equal(decimal.NewFromInt(-5000)) {
		t.Errorf("expected savings movement -5000, got %+v", s.Totals.SavingsMovement)
	}
	if s.Totals.SavingsMovement.Tag != domain.TagDeficit {
		t.Errorf("expected deficit tag on savings movement, got %s", s.Totals.SavingsMovement.Tag)
	}

	cih := findRow(t, s.Rows, "Online Cash In Hand")
	if cih.Status != usecase.RowReady || !cih.Value.Equal(decimal.NewFromInt(55000)) {
		t.Errorf("expected ready CIH row with 55000, got %+v", cih)
	}

	if !s.Completion.Complete {
		t.Error("expected complete branch-day")
	}
	if !s.Completion.Percentage.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100%% completion, got %s", s.Completion.Percentage)
	}
	if len(s.Completion.Missing) != 0 {
		t.Errorf("expected nothing missing, got %v", s.Completion.Missing)
	}
	if s.Submitted {
		t.Error("no operation record means not submitted")
	}
}

func TestDailySummaryUseCase_Build_PartialDataStaysPending(t *testing.T) {
	// Only cashbook 1 exists; derived figures must stay absent rather
	// than render as zeros.
	src := mocks.NewMockResourceSource()
	src.Cashbook1Func = func(ctx context.Context, branchID, date string) (*domain.Cashbook1, error) {
		return &domain.Cashbook1{BranchID: branchID, Date: date, CBTotal1: decimal.NewFromInt(150000)}, nil
	}
	uc := usecase.NewDailySummaryUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	s, err := uc.Build(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Totals.OnlineCIH != nil {
		t.Errorf("online CIH must be nil with cashbook 2 missing, got %+v", s.Totals.OnlineCIH)
	}
	if s.Totals.BankPosition != nil || s.Totals.LoanMovement != nil || s.Totals.SavingsMovement != nil {
		t.Error("expected nil derived totals for missing dependencies")
	}

	cih := findRow(t, s.Rows, "Online Cash In Hand")
	if cih.Status != usecase.RowPending || cih.HasValue {
		t.Errorf("expected pending valueless CIH row, got %+v", cih)
	}
	cb2 := findRow(t, s.Rows, "Cashbook 2 Total (Disbursements)")
	if cb2.Status != usecase.RowPending || cb2.HasValue {
		t.Errorf("expected pending valueless cashbook 2 row, got %+v", cb2)
	}

	want := decimal.NewFromInt(100).Div(decimal.NewFromInt(6))
	if !s.Completion.Percentage.Equal(want) {
		t.Errorf("expected completion %s, got %s", want, s.Completion.Percentage)
	}
	if s.Completion.Complete {
		t.Error("expected incomplete branch-day")
	}
	if len(s.Completion.Missing) != 5 {
		t.Errorf("expected 5 missing components, got %v", s.Completion.Missing)
	}
}

func TestDailySummaryUseCase_Build_FailedResourceIsUnavailable(t *testing.T) {
	src := fullDailySource()
	src.Cashbook1Func = func(ctx context.Context, branchID, date string) (*domain.Cashbook1, error) {
		return nil, domain.ErrUpstream
	}
	uc := usecase.NewDailySummaryUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	s, err := uc.Build(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("one failed resource must not fail the summary: %v", err)
	}

	cb1 := findRow(t, s.Rows, "Cashbook 1 Total (Collections)")
	if cb1.Status != usecase.RowUnavailable {
		t.Errorf("expected unavailable cashbook 1 row, got %+v", cb1)
	}
	if s.Totals.OnlineCIH != nil {
		t.Error("online CIH must stay absent when a dependency failed")
	}
	if s.Totals.BankPosition == nil {
		t.Error("bank position does not depend on cashbook 1")
	}
}

func TestDailySummaryUseCase_Build_Submitted(t *testing.T) {
	submittedAt := time.Date(2026, 8, 31, 18, 5, 0, 0, time.UTC)
	src := fullDailySource()
	src.DailyOperationFunc = func(ctx context.Context, branchID, date string) (*domain.DailyOperation, error) {
		return &domain.DailyOperation{
			BranchID:    branchID,
			Date:        date,
			TSO:         decimal.NewFromInt(315000),
			IsCompleted: true,
			SubmittedAt: &submittedAt,
		}, nil
	}
	uc := usecase.NewDailySummaryUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	s, err := uc.Build(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Submitted {
		t.Error("expected submitted branch-day")
	}
	if s.SubmittedAt == nil || !s.SubmittedAt.Equal(submittedAt) {
		t.Errorf("expected submittedAt %s, got %v", submittedAt, s.SubmittedAt)
	}
	if s.Totals.TSO == nil || !s.Totals.TSO.Value.Equal(decimal.NewFromInt(315000)) {
		t.Errorf("expected TSO 315000, got %+v", s.Totals.TSO)
	}
}

func TestDailySummaryUseCase_Build_KeyGuards(t *testing.T) {
	tests := []struct {
		name     string
		branchID string
		date     string
		wantErr  error
	}{
		{"missing branch", "", "2026-08-31", domain.ErrMissingKey},
		{"missing date", "BR001", "", domain.ErrMissingKey},
		{"malformed date", "BR001", "31-08-2026", domain.ErrInvalidDate},
		{"future date", "BR001", "2026-09-02", domain.ErrFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fullDailySource()
			uc := usecase.NewDailySummaryUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

			_, err := uc.Build(context.Background(), tt.branchID, tt.date, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if src.TotalCalls() != 0 {
				t.Errorf("rejected keys must issue zero upstream calls, got %d", src.TotalCalls())
			}
		})
	}
}

func TestDailySummaryUseCase_Build_SecondReadServedFromCache(t *testing.T) {
	src := fullDailySource()
	uc := usecase.NewDailySummaryUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	if _, err := uc.Build(context.Background(), "BR001", "2026-08-31", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := src.TotalCalls()

	if _, err := uc.Build(context.Background(), "BR001", "2026-08-31", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.TotalCalls() != first {
		t.Errorf("expected cached second build, calls went %d -> %d", first, src.TotalCalls())
	}
}
