package usecase

import (
	"context"

	"github.com/isabitech/branchbooks/internal/domain"
)

// BranchUseCase serves the branch directory, cached with the slow-moving
// branch-list staleness window.
type BranchUseCase struct {
	src     ResourceSource
	fetcher *Fetcher
}

// NewBranchUseCase creates a new BranchUseCase.
func NewBranchUseCase(src ResourceSource, fetcher *Fetcher) *BranchUseCase {
	return &BranchUseCase{src: src, fetcher: fetcher}
}

// List returns all branches.
func (uc *BranchUseCase) List(ctx context.Context, refresh bool) ([]domain.Branch, error) {
	res := fetchResource(ctx, uc.fetcher, "branches", "branches:all", uc.fetcher.cfg.BranchListTTL, refresh,
		func(ctx context.Context) (*[]domain.Branch, error) {
			branches, err := uc.src.Branches(ctx)
			if err != nil {
				return nil, err
			}
			return &branches, nil
		})
	if res.Failed() {
		return nil, res.Err
	}
	if res.Empty() {
		return []domain.Branch{}, nil
	}
	return *res.Data, nil
}

// ListActive returns branches currently in operation.
func (uc *BranchUseCase) ListActive(ctx context.Context, refresh bool) ([]domain.Branch, error) {
	branches, err := uc.List(ctx, refresh)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Branch, 0, len(branches))
	for _, b := range branches {
		if b.Active {
			active = append(active, b)
		}
	}
	return active, nil
}

// Get returns one branch by id.
func (uc *BranchUseCase) Get(ctx context.Context, branchID string) (*domain.Branch, error) {
	if branchID == "" {
		return nil, domain.ErrMissingKey
	}
	branches, err := uc.List(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].ID == branchID {
			return &branches[i], nil
		}
	}
	return nil, domain.ErrBranchNotFound
}
