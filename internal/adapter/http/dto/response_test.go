package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

var naira = format.NewCurrencyFormatter("₦", "NGN")

func TestRowFromViewModelReady(t *testing.T) {
	t.Parallel()

	row := usecase.Row{
		Category: "cashbook",
		Label:    "CB Total 1",
		Value:    decimal.NewFromInt(150000),
		HasValue: true,
		Tag:      domain.TagSurplus,
		Status:   usecase.RowReady,
	}

	resp := dto.RowFromViewModel(row, naira)

	if resp.Value == nil || !resp.Value.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("expected value to be carried, got %+v", resp)
	}
	if resp.Formatted != "₦150,000.00" {
		t.Fatalf("unexpected formatted value %q", resp.Formatted)
	}
	if resp.Status != "ready" || resp.Tag != domain.TagSurplus {
		t.Fatalf("unexpected row metadata: %+v", resp)
	}
}

func TestRowFromViewModelPendingCarriesNoValue(t *testing.T) {
	t.Parallel()

	row := usecase.Row{
		Category: "register",
		Label:    "Loan Register",
		Status:   usecase.RowPending,
	}

	resp := dto.RowFromViewModel(row, naira)

	if resp.Value != nil {
		t.Fatalf("pending row must not carry a value, got %v", resp.Value)
	}
	if resp.Formatted != "" {
		t.Fatalf("pending row must not carry formatted text, got %q", resp.Formatted)
	}
	if resp.Status != "pending" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestMetricPtrFromViewModelNil(t *testing.T) {
	t.Parallel()

	if got := dto.MetricPtrFromViewModel(nil, naira); got != nil {
		t.Fatalf("nil metric must stay nil, got %+v", got)
	}
}

func TestMetricFromViewModelDeficit(t *testing.T) {
	t.Parallel()

	m := usecase.Metric{Value: decimal.NewFromInt(-95000), Tag: domain.TagDeficit}

	resp := dto.MetricFromViewModel(m, naira)

	if resp.Formatted != "-₦95,000.00" {
		t.Fatalf("unexpected formatted value %q", resp.Formatted)
	}
	if resp.Tag != domain.TagDeficit {
		t.Fatalf("unexpected tag %q", resp.Tag)
	}
}

func TestBranchesFromDomain(t *testing.T) {
	t.Parallel()

	branches := []domain.Branch{
		{ID: "br-001", Name: "Ikeja", Code: "IKJ", Active: true},
		{ID: "br-002", Name: "Surulere", Code: "SUR"},
	}

	resp := dto.BranchesFromDomain(branches)

	if len(resp) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(resp))
	}
	if resp[0].ID != "br-001" || !resp[0].Active || resp[1].Active {
		t.Fatalf("unexpected conversion: %+v", resp)
	}
}
