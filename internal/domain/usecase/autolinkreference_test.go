package usecase

import (
	"context"
	"testing"

	"github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/adapter/githubfake"
	"github.com/benkeil/github-operator/internal/domain/port"
)

func uint32Ptr(v uint32) *uint32 { return &v }

func TestAutolinkApply_AdoptsByKeyPrefixWhenIDUnset(t *testing.T) {
	// S3 — Autolink adoption.
	fake := githubfake.New()
	fake.SeedAutolink("acme/api", port.AutolinkReferenceResponse{
		ID: 42, KeyPrefix: "TICKET-", URLTemplate: "https://x/<num>", IsAlphanumeric: false,
	})
	uc := NewAutolinkReference(fake)

	spec := v1alpha1.AutolinkReferenceSpec{
		FullName: "acme/api", KeyPrefix: "TICKET-", URLTemplate: "https://x/<num>", IsAlphanumeric: false,
	}
	result, err := uc.Apply(context.Background(), "acme/api", spec, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.ID != 42 {
		t.Fatalf("ID = %d, want 42", result.ID)
	}
	if result.Action != "" {
		t.Fatalf("Action = %q, want none", result.Action)
	}
	for _, call := range fake.Calls {
		if call == "AddAutolink" {
			t.Fatalf("unexpected AddAutolink call on adopt path")
		}
	}
}

func TestAutolinkApply_DeletesAndRecreatesWhenSpecDiffers(t *testing.T) {
	// S4 — Autolink mutate.
	fake := githubfake.New()
	fake.SeedAutolink("acme/api", port.AutolinkReferenceResponse{
		ID: 42, KeyPrefix: "TICKET-", URLTemplate: "https://x/<num>", IsAlphanumeric: false,
	})
	uc := NewAutolinkReference(fake)

	spec := v1alpha1.AutolinkReferenceSpec{
		FullName: "acme/api", KeyPrefix: "TICKET-", URLTemplate: "https://y/<num>", IsAlphanumeric: false,
	}
	result, err := uc.Apply(context.Background(), "acme/api", spec, uint32Ptr(42))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Action != "autolink-reference-updated" {
		t.Fatalf("Action = %q, want autolink-reference-updated", result.Action)
	}
	if result.ID == 42 {
		t.Fatalf("ID should be a new id, got the old one")
	}

	got, err := fake.GetAutolink(context.Background(), "acme/api", result.ID)
	if err != nil {
		t.Fatalf("GetAutolink: %v", err)
	}
	if got.URLTemplate != "https://y/<num>" {
		t.Fatalf("URLTemplate = %q, want https://y/<num>", got.URLTemplate)
	}
}

func TestAutolinkApply_CreatesWhenStatusIDNotFoundAtRemote(t *testing.T) {
	fake := githubfake.New()
	uc := NewAutolinkReference(fake)

	spec := v1alpha1.AutolinkReferenceSpec{
		FullName: "acme/api", KeyPrefix: "TICKET-", URLTemplate: "https://x/<num>", IsAlphanumeric: false,
	}
	result, err := uc.Apply(context.Background(), "acme/api", spec, uint32Ptr(99))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Action != "autolink-reference-created" {
		t.Fatalf("Action = %q, want autolink-reference-created", result.Action)
	}
}

func TestAutolinkCleanup_ToleratesMissing(t *testing.T) {
	// S5 — Cleanup tolerates missing.
	fake := githubfake.New()
	uc := NewAutolinkReference(fake)

	action, err := uc.Cleanup(context.Background(), "acme/api", uint32Ptr(77))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if action != "autolink-reference-deleted" {
		t.Fatalf("action = %q, want autolink-reference-deleted", action)
	}
}

func TestAutolinkCreate_AdoptsOnConcurrentAlreadyExists(t *testing.T) {
	// simulates a key prefix created by another actor between this use-case's
	// own list-then-create window: AddAutolink rejects with AlreadyExists, so
	// create must fall back to adopting the id that won the race.
	fake := githubfake.New()
	fake.SeedAutolink("acme/api", port.AutolinkReferenceResponse{
		ID: 7, KeyPrefix: "TICKET-", URLTemplate: "https://x/<num>", IsAlphanumeric: false,
	})
	uc := NewAutolinkReference(fake)

	spec := v1alpha1.AutolinkReferenceSpec{
		FullName: "acme/api", KeyPrefix: "TICKET-", URLTemplate: "https://x/<num>", IsAlphanumeric: false,
	}
	result, err := uc.create(context.Background(), "acme/api", spec)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.ID != 7 {
		t.Fatalf("ID = %d, want 7 (adopted)", result.ID)
	}
	if result.Action != "" {
		t.Fatalf("Action = %q, want none on adopt", result.Action)
	}
}

func TestAutolinkCleanup_NoopWhenIDNeverSet(t *testing.T) {
	fake := githubfake.New()
	uc := NewAutolinkReference(fake)

	action, err := uc.Cleanup(context.Background(), "acme/api", nil)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if action != "" {
		t.Fatalf("action = %q, want none", action)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("expected no provider calls, got %v", fake.Calls)
	}
}
