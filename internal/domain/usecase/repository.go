// Package usecase implements the Repository, AutolinkReference, and
// RepositoryPermission Apply/Cleanup contracts against the Remote Provider
// Port, independent of any cluster or transport detail.
package usecase

import (
	"context"

	"github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/domain/diff"
	"github.com/benkeil/github-operator/internal/domain/model"
	"github.com/benkeil/github-operator/internal/domain/port"
)

// RepositoryCleanupPolicy governs what the Repository Cleanup contract does
// with the remote repository on CR deletion. The original source marks this
// a no-op hook; SPEC_FULL resolves the open design question by surfacing it
// as an operator-wide configuration knob rather than a CR field.
type RepositoryCleanupPolicy int

const (
	// PolicyNoop leaves the remote repository untouched on CR delete.
	PolicyNoop RepositoryCleanupPolicy = iota
	// PolicyArchive would archive the remote repository on CR delete. The
	// port exposes no archive operation (it is out of scope per spec §1's
	// Non-goals), so this policy is recorded but currently behaves as Noop.
	PolicyArchive
)

// Repository implements the Repository Apply/Cleanup contract (spec §4.3).
type Repository struct {
	Provider port.RemoteProvider
}

// NewRepository constructs a Repository use-case over provider.
func NewRepository(provider port.RemoteProvider) *Repository {
	return &Repository{Provider: provider}
}

// Apply fetches-or-creates the remote repository, diffs it against the
// configured spec, and updates only if it differs. It returns the ordered
// list of action strings this pass produced ("repository-created",
// "repository-updated"), in the order the side effects occurred, so the
// caller can emit one Event per action while patching status once.
func (u *Repository) Apply(ctx context.Context, fullName string, spec v1alpha1.RepositorySpec) ([]string, error) {
	configured := model.AutoConfigureRepository(spec)
	providerSpec := model.ToRepositoryProviderSpec(configured)

	var actions []string

	current, err := u.Provider.GetRepository(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if current == nil {
		created, err := u.Provider.CreateRepository(ctx, fullName, providerSpec)
		if err != nil {
			return nil, err
		}
		current = created
		actions = append(actions, "repository-created")
	}

	if diff.DifferFromSpec(model.RepositoryDiffValue(configured), model.RepositoryActualValue(current)) {
		if _, err := u.Provider.UpdateRepository(ctx, fullName, providerSpec); err != nil {
			return nil, err
		}
		actions = append(actions, "repository-updated")
	}

	return actions, nil
}

// Cleanup is the archive-on-delete hook: a no-op returning success for every
// policy. The port has no archive operation, so PolicyArchive leaves the
// remote repository untouched, the same as PolicyNoop.
func (u *Repository) Cleanup(_ context.Context, _ string, _ RepositoryCleanupPolicy) error {
	return nil
}
