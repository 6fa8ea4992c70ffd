package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyOperation bundles one of each per-branch-day record plus the
// top-level computed figures supplied by the upstream system.
//
// OnlineCIH is cbTotal1 - cbTotal2 as computed upstream; this service
// re-derives the same figure for summaries but never writes it back.
type DailyOperation struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branchId"`
	Date        string          `json:"date"`
	OnlineCIH   decimal.Decimal `json:"onlineCIH"`
	TSO         decimal.Decimal `json:"tso"`
	IsCompleted bool            `json:"isCompleted"`
	SubmittedAt *time.Time      `json:"submittedAt"`

	Cashbook1       *Cashbook1       `json:"cashbook1"`
	Cashbook2       *Cashbook2       `json:"cashbook2"`
	BankStatement1  *BankStatement1  `json:"bankStatement1"`
	BankStatement2  *BankStatement2  `json:"bankStatement2"`
	LoanRegister    *LoanRegister    `json:"loanRegister"`
	SavingsRegister *SavingsRegister `json:"savingsRegister"`
	Prediction      *Prediction      `json:"prediction"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Submitted reports whether the operation is frozen. Once submitted the
// upstream system rejects further edits and so does this layer.
func (o *DailyOperation) Submitted() bool {
	return o.IsCompleted || o.SubmittedAt != nil
}
