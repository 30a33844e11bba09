package usecase

import (
	"context"
	"testing"

	"github.com/benkeil/github-operator/internal/adapter/githubfake"
	"github.com/benkeil/github-operator/internal/domain/port"
)

func TestDescribe_ComposesRepositoryAndAutolinks(t *testing.T) {
	fake := githubfake.New()
	fake.SeedRepository("acme/widgets", port.RepositoryResponse{FullName: "acme/widgets"})
	fake.SeedAutolink("acme/widgets", port.AutolinkReferenceResponse{ID: 1, KeyPrefix: "TICKET-"})

	view, err := Describe(context.Background(), fake, "acme/widgets")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if view.Repository == nil {
		t.Fatal("expected a repository in the view")
	}
	if len(view.Autolinks) != 1 {
		t.Fatalf("expected 1 autolink, got %d", len(view.Autolinks))
	}
}

func TestDescribe_NilWhenRepositoryMissing(t *testing.T) {
	fake := githubfake.New()

	view, err := Describe(context.Background(), fake, "acme/missing")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if view.Repository != nil {
		t.Fatal("expected no repository in the view")
	}
	if len(view.Autolinks) != 0 {
		t.Fatal("expected no autolinks")
	}
}
