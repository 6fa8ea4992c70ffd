package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/adapter/http/handler"
	"github.com/isabitech/branchbooks/internal/adapter/http/middleware"
	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/infrastructure/auth"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

var naira = format.NewCurrencyFormatter("₦", "NGN")

type stubSummaryService struct {
	summary *usecase.DailySummary
	err     error

	gotBranchID string
	gotDate     string
	gotRefresh  bool
}

func (s *stubSummaryService) Build(_ context.Context, branchID, date string, refresh bool) (*usecase.DailySummary, error) {
	s.gotBranchID = branchID
	s.gotDate = date
	s.gotRefresh = refresh
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func withClaims(r *http.Request, role domain.Role, branchID string) *http.Request {
	claims := &auth.Claims{Role: role, BranchID: branchID}
	ctx := context.WithValue(r.Context(), middleware.ClaimsContextKey, claims)
	return r.WithContext(ctx)
}

func TestSummaryHandlerDaily(t *testing.T) {
	t.Parallel()

	onlineCIH := usecase.Metric{Value: decimal.NewFromInt(55000), Tag: domain.TagSurplus}
	svc := &stubSummaryService{
		summary: &usecase.DailySummary{
			BranchID: "br-001",
			Date:     "2024-06-15",
			Totals:   usecase.DailyTotals{OnlineCIH: &onlineCIH},
		},
	}
	h := handler.NewSummaryHandler(svc, naira)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summaries/daily?branchId=br-001&date=2024-06-15&refresh=true", nil)
	rec := httptest.NewRecorder()
	h.Daily(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotBranchID != "br-001" || svc.gotDate != "2024-06-15" || !svc.gotRefresh {
		t.Fatalf("unexpected service args: %s %s %v", svc.gotBranchID, svc.gotDate, svc.gotRefresh)
	}

	var env struct {
		Success bool                      `json:"success"`
		Data    *dto.DailySummaryResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if env.Data.Totals.OnlineCIH == nil || env.Data.Totals.OnlineCIH.Formatted != "₦55,000.00" {
		t.Fatalf("unexpected onlineCIH: %+v", env.Data.Totals.OnlineCIH)
	}
}

func TestSummaryHandlerMissingBranchIsRejectedWithoutFetch(t *testing.T) {
	t.Parallel()

	svc := &stubSummaryService{}
	h := handler.NewSummaryHandler(svc, naira)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summaries/daily?date=2024-06-15", nil)
	rec := httptest.NewRecorder()
	h.Daily(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.gotBranchID != "" {
		t.Fatalf("service must not be called without a branchId")
	}
}

func TestSummaryHandlerDomainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "future date", err: domain.ErrFutureDate, want: http.StatusBadRequest},
		{name: "upstream down", err: domain.ErrUpstream, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handler.NewSummaryHandler(&stubSummaryService{err: tt.err}, naira)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/summaries/daily?branchId=br-001&date=2024-06-15", nil)
			rec := httptest.NewRecorder()
			h.Daily(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestSummaryHandlerBranchScope(t *testing.T) {
	t.Parallel()

	svc := &stubSummaryService{summary: &usecase.DailySummary{BranchID: "br-001", Date: "2024-06-15"}}
	h := handler.NewSummaryHandler(svc, naira)

	// A branch user may not read another branch's records
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summaries/daily?branchId=br-002&date=2024-06-15", nil)
	req = withClaims(req, domain.RoleBranch, "br-001")
	rec := httptest.NewRecorder()
	h.Daily(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cross-branch read, got %d", rec.Code)
	}

	// Head office may read any branch
	req = httptest.NewRequest(http.MethodGet, "/api/v1/summaries/daily?branchId=br-002&date=2024-06-15", nil)
	req = withClaims(req, domain.RoleHeadOffice, "")
	rec = httptest.NewRecorder()
	h.Daily(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for head office, got %d", rec.Code)
	}
}
