package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/usecase"
	"github.com/isabitech/branchbooks/internal/usecase/mocks"
)

func branchDirectory() []domain.Branch {
	return []domain.Branch{
		{ID: "BR001", Name: "Ikeja", Code: "IKJ", Active: true},
		{ID: "BR002", Name: "Surulere", Code: "SRL", Active: true},
		{ID: "BR003", Name: "Old Yaba", Code: "YBA", Active: false},
	}
}

func TestBranchUseCase_List(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.BranchesFunc = func(ctx context.Context) ([]domain.Branch, error) {
		return branchDirectory(), nil
	}
	cache := mocks.NewMockCache()
	uc := usecase.NewBranchUseCase(src, newFetcher(cache))

	branches, err := uc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(branches) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(branches))
	}

	if !cache.Has("branches:all") {
		t.Error("expected directory cached")
	}
	if got := cache.TTLOf("branches:all"); got != 5*time.Minute {
		t.Errorf("expected branch list TTL, got %s", got)
	}

	// Repeat reads stay local.
	if _, err := uc.List(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := src.Calls("branches"); got != 1 {
		t.Errorf("expected 1 upstream read, got %d", got)
	}
}

func TestBranchUseCase_ListActive(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.BranchesFunc = func(ctx context.Context) ([]domain.Branch, error) {
		return branchDirectory(), nil
	}
	uc := usecase.NewBranchUseCase(src, newFetcher(mocks.NewMockCache()))

	active, err := uc.ListActive(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active branches, got %d", len(active))
	}
	for _, b := range active {
		if !b.Active {
			t.Errorf("inactive branch %s in active list", b.ID)
		}
	}
}

func TestBranchUseCase_Get(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.BranchesFunc = func(ctx context.Context) ([]domain.Branch, error) {
		return branchDirectory(), nil
	}
	uc := usecase.NewBranchUseCase(src, newFetcher(mocks.NewMockCache()))

	b, err := uc.Get(context.Background(), "BR002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "Surulere" {
		t.Errorf("expected Surulere, got %s", b.Name)
	}

	if _, err := uc.Get(context.Background(), "BR999"); !errors.Is(err, domain.ErrBranchNotFound) {
		t.Errorf("expected branch not found, got %v", err)
	}
	if _, err := uc.Get(context.Background(), ""); !errors.Is(err, domain.ErrMissingKey) {
		t.Errorf("expected missing key error, got %v", err)
	}
}

func TestBranchUseCase_List_UpstreamFailure(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.BranchesFunc = func(ctx context.Context) ([]domain.Branch, error) {
		return nil, domain.ErrUpstream
	}
	uc := usecase.NewBranchUseCase(src, newFetcher(mocks.NewMockCache()))

	if _, err := uc.List(context.Background(), false); !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestBranchUseCase_List_RefreshGoesUpstream(t *testing.T) {
	src := mocks.NewMockResourceSource()
	src.BranchesFunc = func(ctx context.Context) ([]domain.Branch, error) {
		return branchDirectory(), nil
	}
	uc := usecase.NewBranchUseCase(src, newFetcher(mocks.NewMockCache()))

	if _, err := uc.List(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.List(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := src.Calls("branches"); got != 2 {
		t.Errorf("expected refresh to re-read upstream, got %d calls", got)
	}
}
