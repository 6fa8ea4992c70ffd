package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashbook1 is the collection-side ledger for one branch-day.
//
// CBTotal1 is computed upstream and is authoritative; it is never
// re-derived from the sub-fields here, because the upstream sum does not
// necessarily cover every listed field.
type Cashbook1 struct {
	ID                  string          `json:"id"`
	BranchID            string          `json:"branchId"`
	Date                string          `json:"date"`
	PreviousCashInHand  decimal.Decimal `json:"previousCashInHand"`
	Savings             decimal.Decimal `json:"savings"`
	LoanCollection      decimal.Decimal `json:"loanCollection"`
	ChargesCollection   decimal.Decimal `json:"chargesCollection"`
	FundsFromHeadOffice decimal.Decimal `json:"fundsFromHeadOffice"`
	FundsFromBranch     decimal.Decimal `json:"fundsFromBranch"`
	CBTotal1            decimal.Decimal `json:"cbTotal1"`
	IsSubmitted         bool            `json:"isSubmitted"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// Cashbook2 is the disbursement-side ledger for one branch-day.
// CBTotal2 is authoritative upstream data, same as CBTotal1.
type Cashbook2 struct {
	ID                       string          `json:"id"`
	BranchID                 string          `json:"branchId"`
	Date                     string          `json:"date"`
	DisbursementCount        int             `json:"disbursementCount"`
	DisbursementAmount       decimal.Decimal `json:"disbursementAmount"`
	DisbursementWithInterest decimal.Decimal `json:"disbursementWithInterest"`
	SavingsWithdrawal        decimal.Decimal `json:"savingsWithdrawal"`
	DominionBankAmount       decimal.Decimal `json:"dominionBankAmount"`
	POSTransferAmount        decimal.Decimal `json:"posTransferAmount"`
	CBTotal2                 decimal.Decimal `json:"cbTotal2"`
	IsSubmitted              bool            `json:"isSubmitted"`
	CreatedAt                time.Time       `json:"createdAt"`
}
