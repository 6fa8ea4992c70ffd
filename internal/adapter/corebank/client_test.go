package corebank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "service-token", 5*time.Second)
	// Keep retries fast in tests.
	client.retrier.initialInterval = time.Millisecond
	client.retrier.maxElapsedTime = time.Second
	return client, srv
}

func TestClient_Cashbook1(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer service-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		if r.URL.Query().Get("branchId") != "br-001" || r.URL.Query().Get("date") != "2024-06-14" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {"cashbook1": {"id": "cb1-1", "branchId": "br-001", "date": "2024-06-14", "cbTotal1": 150000, "isSubmitted": true}},
			"message": "ok"
		}`))
	})

	cb, err := client.Cashbook1(context.Background(), "br-001", "2024-06-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb == nil {
		t.Fatal("expected cashbook, got nil")
	}
	if !cb.CBTotal1.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("expected cbTotal1 150000, got %s", cb.CBTotal1)
	}
	if !cb.IsSubmitted {
		t.Error("expected isSubmitted true")
	}
}

func TestClient_NullEntityIsEmptyNotError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"operations": null}, "message": "operations not found for this date"}`))
	})

	op, err := client.DailyOperation(context.Background(), "br-001", "2024-06-14")
	if err != nil {
		t.Fatalf("null payload must not be an error, got: %v", err)
	}
	if op != nil {
		t.Fatalf("expected nil operation for null payload, got %+v", op)
	}
}

func TestClient_EnvelopeFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "data": {}, "message": "internal failure"}`))
	})

	_, err := client.LoanRegister(context.Background(), "br-001", "2024-06-14")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"success": true, "data": {"loanRegister": {"id": "lr-1", "previousLoanTotal": 200000}}, "message": "ok"}`))
	})

	reg, err := client.LoanRegister(context.Background(), "br-001", "2024-06-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg == nil {
		t.Fatal("expected register after retry")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 calls, got %d", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.SavingsRegister(context.Background(), "br-001", "2024-06-14")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single call for a 4xx, got %d", got)
	}
}

func TestClient_SubmitDailyOperation(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantError error
	}{
		{
			name:   "accepted",
			status: http.StatusOK,
			body:   `{"success": true, "data": {}, "message": "submitted"}`,
		},
		{
			name:      "already submitted",
			status:    http.StatusConflict,
			body:      `{"success": false, "data": {}, "message": "already submitted"}`,
			wantError: domain.ErrAlreadySubmitted,
		},
		{
			name:      "unknown operation",
			status:    http.StatusNotFound,
			body:      `{"success": false, "data": {}, "message": "not found"}`,
			wantError: domain.ErrOperationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPatch {
					t.Errorf("expected PATCH, got %s", r.Method)
				}
				if r.URL.Path != "/operations/daily/op-1/submit" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.Header.Get("Idempotency-Key") == "" {
					t.Error("expected idempotency key header")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.SubmitDailyOperation(context.Background(), "op-1", "key-1")
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected %v, got %v", tt.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestClient_Branches(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"branches": [{"id": "br-001", "name": "Ikeja", "code": "IKJ", "isActive": true}]}, "message": "ok"}`))
	})

	branches, err := client.Branches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(branches) != 1 || branches[0].Code != "IKJ" {
		t.Fatalf("unexpected branches: %+v", branches)
	}
}
