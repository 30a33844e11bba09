package usecase

import (
	"context"
	"testing"

	"github.com/benkeil/github-operator/internal/adapter/githubfake"
)

func TestPermissionApply_UpdatesOnDiffer(t *testing.T) {
	// S6 — Permission change.
	fake := githubfake.New()
	fake.SeedTeamPermission("acme/api", "acme/dev", "pull")
	uc := NewPermission(fake)

	action, err := uc.Apply(context.Background(), "acme/api", "acme/dev", "push")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if action != "permission-updated" {
		t.Fatalf("action = %q, want permission-updated", action)
	}
}

func TestPermissionApply_UpdatesOnAbsent(t *testing.T) {
	fake := githubfake.New()
	uc := NewPermission(fake)

	action, err := uc.Apply(context.Background(), "acme/api", "acme/dev", "push")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if action != "permission-updated" {
		t.Fatalf("action = %q, want permission-updated", action)
	}
}

func TestPermissionApply_NoopWhenEqual(t *testing.T) {
	fake := githubfake.New()
	fake.SeedTeamPermission("acme/api", "acme/dev", "push")
	uc := NewPermission(fake)

	action, err := uc.Apply(context.Background(), "acme/api", "acme/dev", "push")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if action != "" {
		t.Fatalf("action = %q, want none", action)
	}
}

func TestPermissionCleanup_ToleratesMissing(t *testing.T) {
	fake := githubfake.New()
	uc := NewPermission(fake)

	action, err := uc.Cleanup(context.Background(), "acme/api", "acme/dev")
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if action != "permission-deleted" {
		t.Fatalf("action = %q, want permission-deleted", action)
	}
}
