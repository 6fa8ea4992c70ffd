package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/domain"
)

// OperationService defines the behavior needed by OperationHandler.
type OperationService interface {
	Get(ctx context.Context, branchID, date string, refresh bool) (*domain.DailyOperation, error)
	Submit(ctx context.Context, operationID, branchID, date string) error
}

// OperationHandler handles daily operation HTTP requests.
type OperationHandler struct {
	operationUC OperationService
}

// NewOperationHandler creates a new OperationHandler.
func NewOperationHandler(operationUC OperationService) *OperationHandler {
	return &OperationHandler{operationUC: operationUC}
}

// Get returns the raw daily operation for one branch-day.
func (h *OperationHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseDailyQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "branchId is required")
		return
	}

	if err := authorizeBranch(r, q.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	op, err := h.operationUC.Get(r.Context(), q.BranchID, defaultDate(q.Date), q.Refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if op == nil {
		writeData(w, http.StatusOK, nil)
		return
	}

	writeData(w, http.StatusOK, dto.OperationFromDomain(op))
}

// Submit freezes a branch-day. A conflict means the operation was already
// submitted and is reported as such without a retry.
func (h *OperationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "operationId")
	if operationID == "" {
		writeError(w, http.StatusBadRequest, "missing operation ID")
		return
	}

	var req dto.SubmitOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "branchId and date are required")
		return
	}

	if err := authorizeSubmit(r, req.BranchID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.operationUC.Submit(r.Context(), operationID, req.BranchID, req.Date); err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{
		"operationId": operationID,
		"status":      "submitted",
	})
}
