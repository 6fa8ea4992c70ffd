package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
)

// RowStatus is the render state of one view-model row.
type RowStatus string

const (
	// RowReady carries a real value.
	RowReady RowStatus = "ready"

	// RowPending means a dependency has no record yet. A pending row
	// carries no value: zero-filling would be indistinguishable from a
	// true zero.
	RowPending RowStatus = "pending"

	// RowUnavailable means a dependency failed to load; the rest of the
	// screen still renders.
	RowUnavailable RowStatus = "unavailable"
)

// Row is one renderable line of a summary table.
type Row struct {
	Category string
	Label    string
	Value    decimal.Decimal
	HasValue bool
	Tag      domain.StatusTag
	Status   RowStatus
}

// Metric is a derived figure with its surplus/deficit classification.
type Metric struct {
	Value decimal.Decimal
	Tag   domain.StatusTag
}

// Completion describes how much of a branch-day's required paperwork
// exists, each sub-component weighted equally.
type Completion struct {
	Percentage decimal.Decimal
	Complete   bool
	Missing    []string
}

func valueRow(category, label string, value decimal.Decimal) Row {
	return Row{
		Category: category,
		Label:    label,
		Value:    value,
		HasValue: true,
		Tag:      domain.TagFor(value),
		Status:   RowReady,
	}
}

func pendingRow(category, label string) Row {
	return Row{Category: category, Label: label, Status: RowPending}
}

func unavailableRow(category, label string) Row {
	return Row{Category: category, Label: label, Status: RowUnavailable}
}

func metricOf(value decimal.Decimal) *Metric {
	return &Metric{Value: value, Tag: domain.TagFor(value)}
}

// statusRow picks the row for a resource in any terminal state.
func statusRow[T any](res Result[T], category, label string, value func(*T) decimal.Decimal) Row {
	switch res.State {
	case StateReady:
		return valueRow(category, label, value(res.Data))
	case StateEmpty:
		return pendingRow(category, label)
	default:
		return unavailableRow(category, label)
	}
}
