package handler

import (
	"context"
	"net/http"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// DisbursementService defines the behavior needed by DisbursementHandler.
type DisbursementService interface {
	MonthlySummary(ctx context.Context, branchID, month, year string, refresh bool) (*usecase.DisbursementRollSummary, error)
}

// DisbursementHandler handles disbursement roll HTTP requests.
type DisbursementHandler struct {
	disbursementUC DisbursementService
	formatter      *format.CurrencyFormatter
}

// NewDisbursementHandler creates a new DisbursementHandler.
func NewDisbursementHandler(disbursementUC DisbursementService, formatter *format.CurrencyFormatter) *DisbursementHandler {
	return &DisbursementHandler{disbursementUC: disbursementUC, formatter: formatter}
}

// Roll returns the disbursement roll summary for one branch-month.
func (h *DisbursementHandler) Roll(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseMonthlyQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "branchId, month and year are required")
		return
	}

	if err := authorizeBranch(r, q.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	summary, err := h.disbursementUC.MonthlySummary(r.Context(), q.BranchID, q.Month, q.Year, q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if summary == nil {
		writeData(w, http.StatusOK, nil)
		return
	}

	writeData(w, http.StatusOK, dto.DisbursementRollFromViewModel(summary, h.formatter))
}
