package domain

import "github.com/shopspring/decimal"

// StatusTag is the semantic classification of a derived figure.
type StatusTag string

const (
	// TagSurplus marks a non-negative position or growth. Zero counts as
	// surplus, matching the >= 0 convention used across all reports.
	TagSurplus StatusTag = "surplus"

	// TagDeficit marks a negative position or reduction.
	TagDeficit StatusTag = "deficit"
)

// NetPosition returns inflow - outflow. Used for bank statement summaries
// (bs1Total - bs2Total) and online cash-in-hand (cbTotal1 - cbTotal2).
func NetPosition(inflow, outflow decimal.Decimal) decimal.Decimal {
	return inflow.Sub(outflow)
}

// NetChange returns current - previous.
func NetChange(current, previous decimal.Decimal) decimal.Decimal {
	return current.Sub(previous)
}

// GrowthRate returns ((current - previous) / previous) * 100.
// A zero previous value yields zero, never an error or infinity, because
// the result feeds percentage displays directly.
func GrowthRate(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}

// CollectionRate returns (collected / previousTotal) * 100, with the same
// zero guard as GrowthRate.
func CollectionRate(collected, previousTotal decimal.Decimal) decimal.Decimal {
	if previousTotal.IsZero() {
		return decimal.Zero
	}
	return collected.Div(previousTotal).Mul(decimal.NewFromInt(100))
}

// CompletionPercentage returns the equal-weighted percentage of true flags.
// Each of N required sub-components is worth 100/N.
func CompletionPercentage(requiredFlags []bool) decimal.Decimal {
	if len(requiredFlags) == 0 {
		return decimal.Zero
	}
	done := 0
	for _, ok := range requiredFlags {
		if ok {
			done++
		}
	}
	return decimal.NewFromInt(int64(done * 100)).Div(decimal.NewFromInt(int64(len(requiredFlags))))
}

// OverallComplete reports whether every required sub-component is present.
func OverallComplete(requiredFlags []bool) bool {
	for _, ok := range requiredFlags {
		if !ok {
			return false
		}
	}
	return true
}

// TagFor classifies a derived amount: negative is a deficit/reduction,
// zero and above is surplus/growth.
func TagFor(amount decimal.Decimal) StatusTag {
	if amount.IsNegative() {
		return TagDeficit
	}
	return TagSurplus
}
