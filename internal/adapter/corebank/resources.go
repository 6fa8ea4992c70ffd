package corebank

import (
	"context"
	"net/url"

	"github.com/isabitech/branchbooks/internal/domain"
)

// Cashbook1 fetches the collection-side cashbook for a branch-day.
func (c *Client) Cashbook1(ctx context.Context, branchID, date string) (*domain.Cashbook1, error) {
	var cb domain.Cashbook1
	found, err := c.get(ctx, "/cashbooks/cb1", dailyKey(branchID, date), "cashbook1", &cb)
	if err != nil || !found {
		return nil, err
	}
	return &cb, nil
}

// Cashbook2 fetches the disbursement-side cashbook for a branch-day.
func (c *Client) Cashbook2(ctx context.Context, branchID, date string) (*domain.Cashbook2, error) {
	var cb domain.Cashbook2
	found, err := c.get(ctx, "/cashbooks/cb2", dailyKey(branchID, date), "cashbook2", &cb)
	if err != nil || !found {
		return nil, err
	}
	return &cb, nil
}

// BankStatement1 fetches the inflow-side bank statement for a branch-day.
func (c *Client) BankStatement1(ctx context.Context, branchID, date string) (*domain.BankStatement1, error) {
	var bs domain.BankStatement1
	found, err := c.get(ctx, "/bank-statements/bs1", dailyKey(branchID, date), "bankStatement1", &bs)
	if err != nil || !found {
		return nil, err
	}
	return &bs, nil
}

// BankStatement2 fetches the outflow-side bank statement for a branch-day.
func (c *Client) BankStatement2(ctx context.Context, branchID, date string) (*domain.BankStatement2, error) {
	var bs domain.BankStatement2
	found, err := c.get(ctx, "/bank-statements/bs2", dailyKey(branchID, date), "bankStatement2", &bs)
	if err != nil || !found {
		return nil, err
	}
	return &bs, nil
}

// LoanRegister fetches the loan register for a branch-day.
func (c *Client) LoanRegister(ctx context.Context, branchID, date string) (*domain.LoanRegister, error) {
	var reg domain.LoanRegister
	found, err := c.get(ctx, "/registers/loan", dailyKey(branchID, date), "loanRegister", &reg)
	if err != nil || !found {
		return nil, err
	}
	return &reg, nil
}

// SavingsRegister fetches the savings register for a branch-day.
func (c *Client) SavingsRegister(ctx context.Context, branchID, date string) (*domain.SavingsRegister, error) {
	var reg domain.SavingsRegister
	found, err := c.get(ctx, "/registers/savings", dailyKey(branchID, date), "savingsRegister", &reg)
	if err != nil || !found {
		return nil, err
	}
	return &reg, nil
}

// DisbursementRoll fetches the monthly disbursement roll for a branch.
func (c *Client) DisbursementRoll(ctx context.Context, branchID, month, year string) (*domain.DisbursementRoll, error) {
	var roll domain.DisbursementRoll
	found, err := c.get(ctx, "/disbursement-roll", monthlyKey(branchID, month, year), "disbursementRoll", &roll)
	if err != nil || !found {
		return nil, err
	}
	return &roll, nil
}

// Prediction fetches the next-day disbursement estimate for a branch-day.
func (c *Client) Prediction(ctx context.Context, branchID, date string) (*domain.Prediction, error) {
	var p domain.Prediction
	found, err := c.get(ctx, "/predictions", dailyKey(branchID, date), "prediction", &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// EFCCRecord fetches the remittance-owing record for a branch-day.
func (c *Client) EFCCRecord(ctx context.Context, branchID, date string) (*domain.EFCCRecord, error) {
	var rec domain.EFCCRecord
	found, err := c.get(ctx, "/efcc", dailyKey(branchID, date), "efccRecord", &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

// AmountNeedTomorrow fetches the next-day cash planning snapshot.
func (c *Client) AmountNeedTomorrow(ctx context.Context, branchID, date string) (*domain.AmountNeedTomorrow, error) {
	var rec domain.AmountNeedTomorrow
	found, err := c.get(ctx, "/amount-need-tomorrow", dailyKey(branchID, date), "amountNeedTomorrow", &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

// DailyOperation fetches the bundled daily operation record. A nil result
// with a nil error means no operation has been started for the key yet.
func (c *Client) DailyOperation(ctx context.Context, branchID, date string) (*domain.DailyOperation, error) {
	var op domain.DailyOperation
	found, err := c.get(ctx, "/operations/daily", dailyKey(branchID, date), "operations", &op)
	if err != nil || !found {
		return nil, err
	}
	return &op, nil
}

// Branches fetches the branch directory.
func (c *Client) Branches(ctx context.Context) ([]domain.Branch, error) {
	var branches []domain.Branch
	found, err := c.get(ctx, "/branches", url.Values{}, "branches", &branches)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Branch{}, nil
	}
	return branches, nil
}

// SubmitDailyOperation forwards the single mutation this service owns.
// An already-submitted operation surfaces domain.ErrAlreadySubmitted; the
// caller must not re-attempt it.
func (c *Client) SubmitDailyOperation(ctx context.Context, operationID, idempotencyKey string) error {
	return c.patch(ctx, "/operations/daily/"+url.PathEscape(operationID)+"/submit", nil, idempotencyKey)
}
