package handler

import (
	"context"
	"net/http"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// RegisterService defines the behavior needed by RegisterHandler.
type RegisterService interface {
	LoanSummary(ctx context.Context, branchID, date string, refresh bool) (*usecase.LoanRegisterSummary, error)
	SavingsSummary(ctx context.Context, branchID, date string, refresh bool) (*usecase.SavingsRegisterSummary, error)
}

// RegisterHandler handles loan and savings register HTTP requests.
type RegisterHandler struct {
	registerUC RegisterService
	formatter  *format.CurrencyFormatter
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(registerUC RegisterService, formatter *format.CurrencyFormatter) *RegisterHandler {
	return &RegisterHandler{registerUC: registerUC, formatter: formatter}
}

// Loan returns the loan register summary for one branch-day.
func (h *RegisterHandler) Loan(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseDailyQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "branchId is required")
		return
	}

	if err := authorizeBranch(r, q.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	summary, err := h.registerUC.LoanSummary(r.Context(), q.BranchID, defaultDate(q.Date), q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if summary == nil {
		writeData(w, http.StatusOK, nil)
		return
	}

	writeData(w, http.StatusOK, dto.LoanRegisterFromViewModel(summary, h.formatter))
}

// Savings returns the savings register summary for one branch-day.
func (h *RegisterHandler) Savings(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseDailyQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "branchId is required")
		return
	}

	if err := authorizeBranch(r, q.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	summary, err := h.registerUC.SavingsSummary(r.Context(), q.BranchID, defaultDate(q.Date), q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if summary == nil {
		writeData(w, http.StatusOK, nil)
		return
	}

	writeData(w, http.StatusOK, dto.SavingsRegisterFromViewModel(summary, h.formatter))
}
