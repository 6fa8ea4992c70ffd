package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EFCCRecord tracks remittance owing for a branch-day. The acronym is the
// institution's internal name for this record, unrelated to the agency.
type EFCCRecord struct {
	ID             string          `json:"id"`
	BranchID       string          `json:"branchId"`
	Date           string          `json:"date"`
	PreviousOwing  decimal.Decimal `json:"previousOwing"`
	AmountRemitted decimal.Decimal `json:"amountRemitted"`
	NewOwing       decimal.Decimal `json:"newOwing"`
	CurrentOwing   decimal.Decimal `json:"currentOwing"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AmountNeedTomorrow is a branch's next-day cash planning snapshot.
type AmountNeedTomorrow struct {
	ID             string          `json:"id"`
	BranchID       string          `json:"branchId"`
	Date           string          `json:"date"`
	PreviousAmount decimal.Decimal `json:"previousAmount"`
	AmountNeeded   decimal.Decimal `json:"amountNeeded"`
	CurrentAmount  decimal.Decimal `json:"currentAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
}
