package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/ports/mocks"
)

func TestStatsService_Execute(t *testing.T) {
	svc := NewStatsService(newSampleRepo(t))

	stats, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []CategoryCount{
		{domain.CategoryMarketingCollaterals, 2},
		{domain.CategoryPlaybooks, 2},
		{domain.CategoryCaseStudies, 1},
		{domain.CategoryCompetitivePositioning, 0},
		{domain.CategoryContractTemplates, 0},
	}
	if diff := cmp.Diff(want, stats.ByCategory); diff != "" {
		t.Errorf("ByCategory mismatch (-want +got):\n%s", diff)
	}

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.Previewable != 3 || stats.Linked != 1 || stats.Inert != 1 {
		t.Errorf("actions = %d/%d/%d, want 3/1/1", stats.Previewable, stats.Linked, stats.Inert)
	}
	// airlines is shared by two assets
	if stats.Tags != 8 {
		t.Errorf("Tags = %d, want 8", stats.Tags)
	}
	if stats.Count(domain.CategoryPlaybooks) != 2 {
		t.Errorf("Count(Playbooks) = %d", stats.Count(domain.CategoryPlaybooks))
	}
	if stats.Count(domain.Category("Brochures")) != 0 {
		t.Error("unknown category should count zero")
	}
}

func TestStatsService_EmptyCatalog(t *testing.T) {
	svc := NewStatsService(mocks.NewMockCatalogRepository())

	stats, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 0 || stats.Tags != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
	if len(stats.ByCategory) != len(domain.Categories()) {
		t.Errorf("expected every category listed, got %d", len(stats.ByCategory))
	}
}

func TestStatsService_RepositoryError(t *testing.T) {
	repo := mocks.NewMockCatalogRepository()
	repo.SetListError(errors.New("boom"))

	if _, err := NewStatsService(repo).Execute(context.Background()); err == nil {
		t.Error("expected error")
	}
}
