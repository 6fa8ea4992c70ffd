package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisbursementRoll is the monthly rolling disbursement total for a branch.
type DisbursementRoll struct {
	ID                   string          `json:"id"`
	BranchID             string          `json:"branchId"`
	Month                string          `json:"month"`
	Year                 string          `json:"year"`
	PreviousDisbursement decimal.Decimal `json:"previousDisbursement"`
	DailyAverage         decimal.Decimal `json:"dailyAverage"`
	RollTotal            decimal.Decimal `json:"disbursementRoll"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// Prediction is the next-day disbursement estimate recorded with a
// branch's daily operation.
type Prediction struct {
	ID              string          `json:"id"`
	BranchID        string          `json:"branchId"`
	Date            string          `json:"date"`
	EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
	EstimatedCount  int             `json:"estimatedCount"`
	CreatedAt       time.Time       `json:"createdAt"`
}
