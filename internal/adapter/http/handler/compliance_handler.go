package handler

import (
	"context"
	"net/http"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// ComplianceService defines the behavior needed by ComplianceHandler.
type ComplianceService interface {
	EFCCSummary(ctx context.Context, branchID, date string, refresh bool) (*usecase.ComplianceSummary, error)
	AmountNeedTomorrowSummary(ctx context.Context, branchID, date string, refresh bool) (*usecase.ComplianceSummary, error)
}

// ComplianceHandler handles the EFCC and amount-need-tomorrow requests.
type ComplianceHandler struct {
	complianceUC ComplianceService
	formatter    *format.CurrencyFormatter
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceUC ComplianceService, formatter *format.CurrencyFormatter) *ComplianceHandler {
	return &ComplianceHandler{complianceUC: complianceUC, formatter: formatter}
}

// EFCC returns the remittance-owing summary for one branch-day.
func (h *ComplianceHandler) EFCC(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.complianceUC.EFCCSummary)
}

// AmountNeedTomorrow returns the next-day cash planning summary.
func (h *ComplianceHandler) AmountNeedTomorrow(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.complianceUC.AmountNeedTomorrowSummary)
}

func (h *ComplianceHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	load func(ctx context.Context, branchID, date string, refresh bool) (*usecase.ComplianceSummary, error),
) {
	q, err := dto.ParseDailyQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "branchId is required")
		return
	}

	if err := authorizeBranch(r, q.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	summary, err := load(r.Context(), q.BranchID, defaultDate(q.Date), q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if summary == nil {
		writeData(w, http.StatusOK, nil)
		return
	}

	writeData(w, http.StatusOK, dto.ComplianceFromViewModel(summary, h.formatter))
}
