package handler

import (
	"context"
	"net/http"

	"github.com/isabitech/branchbooks/internal/adapter/http/dto"
	"github.com/isabitech/branchbooks/internal/domain"
)

// BranchService defines the behavior needed by BranchHandler.
type BranchService interface {
	List(ctx context.Context, refresh bool) ([]domain.Branch, error)
}

// BranchHandler handles branch directory HTTP requests.
type BranchHandler struct {
	branchUC BranchService
}

// NewBranchHandler creates a new BranchHandler.
func NewBranchHandler(branchUC BranchService) *BranchHandler {
	return &BranchHandler{branchUC: branchUC}
}

// List returns the branch directory.
func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	branches, err := h.branchUC.List(r.Context(), refresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.BranchesFromDomain(branches))
}
