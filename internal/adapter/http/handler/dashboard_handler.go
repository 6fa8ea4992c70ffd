package handler

import (
	"context"
	"net/http"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Consolidated(ctx context.Context, date string, refresh bool) (*usecase.ConsolidatedDashboard, error)
}

// DashboardHandler handles the head-office consolidated dashboard.
type DashboardHandler struct {
	dashboardUC DashboardService
	formatter   *format.CurrencyFormatter
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService, formatter *format.CurrencyFormatter) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, formatter: formatter}
}

// Consolidated returns the all-branch standing for one date.
func (h *DashboardHandler) Consolidated(w http.ResponseWriter, r *http.Request) {
	if err := authorizeDashboard(r); err != nil {
		writeDomainError(w, err)
		return
	}

	q := dto.ParseDashboardQuery(r)

	dashboard, err := h.dashboardUC.Consolidated(r.Context(), defaultDate(q.Date), q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.DashboardFromViewModel(dashboard, h.formatter))
}
