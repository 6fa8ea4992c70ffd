package handler

import (
	"context"
	"net/http"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// DailySummaryService defines the behavior needed by SummaryHandler.
type DailySummaryService interface {
	Build(ctx context.Context, branchID, date string, refresh bool) (*usecase.DailySummary, error)
}

// SummaryHandler handles daily summary HTTP requests.
type SummaryHandler struct {
	summaryUC DailySummaryService
	formatter *format.CurrencyFormatter
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC DailySummaryService, formatter *format.CurrencyFormatter) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC, formatter: formatter}
}

// Daily returns the daily operations summary for one branch-day.
func (h *SummaryHandler) Daily(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseDailyQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "branchId is required")
		return
	}

	if err := authorizeBranch(r, q.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	summary, err := h.summaryUC.Build(r.Context(), q.BranchID, defaultDate(q.Date), q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.DailySummaryFromViewModel(summary, h.formatter))
}
