package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRegister tracks the loan book movement for one branch-day.
//
// CurrentLoanBalance is expected to equal
// PreviousLoanTotal + LoanDisbursementWithInterest - LoanCollection,
// but the upstream value is authoritative and is not recomputed here.
type LoanRegister struct {
	ID                           string          `json:"id"`
	BranchID                     string          `json:"branchId"`
	Date                         string          `json:"date"`
	PreviousLoanTotal            decimal.Decimal `json:"previousLoanTotal"`
	LoanDisbursementWithInterest decimal.Decimal `json:"loanDisbursementWithInterest"`
	LoanCollection               decimal.Decimal `json:"loanCollection"`
	CurrentLoanBalance           decimal.Decimal `json:"currentLoanBalance"`
	CreatedAt                    time.Time       `json:"createdAt"`
}

// SavingsRegister tracks the savings book movement for one branch-day.
// CurrentSavingsBalance follows the same additive shape as LoanRegister.
type SavingsRegister struct {
	ID                    string          `json:"id"`
	BranchID              string          `json:"branchId"`
	Date                  string          `json:"date"`
	PreviousSavingsTotal  decimal.Decimal `json:"previousSavingsTotal"`
	NewDeposits           decimal.Decimal `json:"newDeposits"`
	Withdrawals           decimal.Decimal `json:"withdrawals"`
	CurrentSavingsBalance decimal.Decimal `json:"currentSavingsBalance"`
	CreatedAt             time.Time       `json:"createdAt"`
}
