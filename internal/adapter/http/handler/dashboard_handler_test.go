package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isabitech/branchbooks/internal/adapter/http/handler"
	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/usecase"
)

type stubDashboardService struct {
	gotDate string
}

func (s *stubDashboardService) Consolidated(_ context.Context, date string, refresh bool) (*usecase.ConsolidatedDashboard, error) {
	s.gotDate = date
	return &usecase.ConsolidatedDashboard{Date: date}, nil
}

func TestDashboardHandlerHeadOfficeOnly(t *testing.T) {
	t.Parallel()

	svc := &stubDashboardService{}
	h := handler.NewDashboardHandler(svc, naira)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/consolidated?date=2024-06-15", nil)
	req = withClaims(req, domain.RoleBranch, "br-001")
	rec := httptest.NewRecorder()
	h.Consolidated(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for branch user, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/consolidated?date=2024-06-15", nil)
	req = withClaims(req, domain.RoleHeadOffice, "")
	rec = httptest.NewRecorder()
	h.Consolidated(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for head office, got %d", rec.Code)
	}
	if svc.gotDate != "2024-06-15" {
		t.Fatalf("unexpected date %q", svc.gotDate)
	}
}
