package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/usecase"
	"github.com/isabitech/branchbooks/internal/usecase/mocks"
)

func TestComplianceUseCase_EFCCSummary(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.EFCCRecordFunc = func(ctx context.Context, branchID, date string) (*domain.EFCCRecord, error) {
		return &domain.EFCCRecord{
			BranchID:       branchID,
			Date:           date,
			PreviousOwing:  decimal.NewFromInt(50000),
			AmountRemitted: decimal.NewFromInt(20000),
			NewOwing:       decimal.NewFromInt(10000),
			CurrentOwing:   decimal.NewFromInt(40000),
		}, nil
	}
	cache := mocks.NewMockCache()
	uc := usecase.NewComplianceUseCase(src, newFetcher(cache), mocks.MockClock{NowTime: testNow})

	s, err := uc.EFCCSummary(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != "efcc" {
		t.Errorf("expected kind efcc, got %s", s.Kind)
	}
	// Owing went down: a negative change, classified as reduction.
	if !s.NetChange.Value.Equal(decimal.NewFromInt(-10000)) {
		t.Errorf("expected net change -10000, got %s", s.NetChange.Value)
	}
	if s.NetChange.Tag != domain.TagDeficit {
		t.Errorf("expected deficit tag, got %s", s.NetChange.Tag)
	}
	if !s.GrowthRate.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("expected growth rate -20, got %s", s.GrowthRate)
	}
	if len(s.Rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(s.Rows))
	}
	if !cache.Has("efcc:BR001:2026-08-31") {
		t.Error("expected record cached under the efcc key")
	}
}

func TestComplianceUseCase_EFCCSummary_NoRecord(t *testing.T) {
	uc := usecase.NewComplianceUseCase(mocks.NewMockResourceSource(), newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	s, err := uc.EFCCSummary(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("no record is not an error: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil summary, got %+v", s)
	}
}

func TestComplianceUseCase_AmountNeedTomorrowSummary(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.AmountNeedTomorrowFunc = func(ctx context.Context, branchID, date string) (*domain.AmountNeedTomorrow, error) {
		return &domain.AmountNeedTomorrow{
			BranchID:       branchID,
			Date:           date,
			PreviousAmount: decimal.NewFromInt(80000),
			AmountNeeded:   decimal.NewFromInt(12000),
			CurrentAmount:  decimal.NewFromInt(92000),
		}, nil
	}
	cache := mocks.NewMockCache()
	uc := usecase.NewComplianceUseCase(src, newFetcher(cache), mocks.MockClock{NowTime: testNow})

	s, err := uc.AmountNeedTomorrowSummary(context.Background(), "BR001", "2026-08-31", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != "amount-need-tomorrow" {
		t.Errorf("expected kind amount-need-tomorrow, got %s", s.Kind)
	}
	if !s.NetChange.Value.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("expected net change 12000, got %s", s.NetChange.Value)
	}
	if s.NetChange.Tag != domain.TagSurplus {
		t.Errorf("expected surplus tag, got %s", s.NetChange.Tag)
	}
	if len(s.Rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(s.Rows))
	}
	if !cache.Has("ant:BR001:2026-08-31") {
		t.Error("expected record cached under the ant key")
	}
}

func TestComplianceUseCase_KeyGuards(t *testing.T) {
	src := mocks.NewMockResourceSource()
	uc := usecase.NewComplianceUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	if _, err := uc.EFCCSummary(context.Background(), "", "2026-08-31", false); !errors.Is(err, domain.ErrMissingKey) {
		t.Errorf("expected missing key error, got %v", err)
	}
	if _, err := uc.AmountNeedTomorrowSummary(context.Background(), "BR001", "", false); !errors.Is(err, domain.ErrMissingKey) {
		t.Errorf("expected missing key error, got %v", err)
	}
	if _, err := uc.EFCCSummary(context.Background(), "BR001", "2027-01-01", false); !errors.Is(err, domain.ErrFutureDate) {
		t.Errorf("expected future date error, got %v", err)
	}
	if src.TotalCalls() != 0 {
		t.Errorf("rejected keys must issue zero upstream calls, got %d", src.TotalCalls())
	}
}

func TestComplianceUseCase_UpstreamFailure(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.EFCCRecordFunc = func(ctx context.Context, branchID, date string) (*domain.EFCCRecord, error) {
		return nil, domain.ErrUpstream
	}
	uc := usecase.NewComplianceUseCase(src, newFetcher(mocks.NewMockCache()), mocks.MockClock{NowTime: testNow})

	if _, err := uc.EFCCSummary(context.Background(), "BR001", "2026-08-31", false); !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}
