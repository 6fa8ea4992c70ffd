package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankStatement1 is the inflow side of a branch-day bank reconciliation.
// BS1Total is authoritative upstream data.
type BankStatement1 struct {
	ID                    string          `json:"id"`
	BranchID              string          `json:"branchId"`
	Date                  string          `json:"date"`
	OpeningBalance        decimal.Decimal `json:"openingBalance"`
	ReceivedFromHO        decimal.Decimal `json:"receivedFromHO"`
	ReceivedFromBO        decimal.Decimal `json:"receivedFromBO"`
	DominionBankAmount    decimal.Decimal `json:"dominionBankAmount"`
	POSTransferAgencyAmnt decimal.Decimal `json:"posTransferAgencyAmount"`
	BS1Total              decimal.Decimal `json:"bs1Total"`
	IsSubmitted           bool            `json:"isSubmitted"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// BankStatement2 is the outflow side. BS2Total is authoritative upstream data.
type BankStatement2 struct {
	ID               string          `json:"id"`
	BranchID         string          `json:"branchId"`
	Date             string          `json:"date"`
	Withdrawal       decimal.Decimal `json:"withdrawal"`
	TransferToBranch decimal.Decimal `json:"transferToBranchOffice"`
	ExpenseAmount    decimal.Decimal `json:"expenseAmount"`
	ExpensePurpose   string          `json:"expensePurpose"`
	BS2Total         decimal.Decimal `json:"bs2Total"`
	IsSubmitted      bool            `json:"isSubmitted"`
	CreatedAt        time.Time       `json:"createdAt"`
}
