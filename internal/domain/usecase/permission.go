package usecase

import (
	"context"

	"github.com/benkeil/github-operator/internal/domain/port"
)

// Permission implements the RepositoryPermission Apply/Cleanup contract
// (spec §4.5).
type Permission struct {
	Provider port.RemoteProvider
}

// NewPermission constructs a Permission use-case over provider.
func NewPermission(provider port.RemoteProvider) *Permission {
	return &Permission{Provider: provider}
}

// Apply fetches the team's current role on fullName and PUTs the declared
// role if absent or different. spec.md literally uses the same
// "permission-updated" action for both the absent and the differs branch, so
// this use-case does too.
func (u *Permission) Apply(ctx context.Context, fullName, fullTeamName, role string) (string, error) {
	current, err := u.Provider.GetTeamPermission(ctx, fullName, fullTeamName)
	if err != nil {
		return "", err
	}
	if current != nil && *current == role {
		return "", nil
	}
	if err := u.Provider.UpdateTeamPermission(ctx, fullName, fullTeamName, role); err != nil {
		return "", err
	}
	return "permission-updated", nil
}

// Cleanup deletes the team's assignment on fullName. A remote 404 is
// success.
func (u *Permission) Cleanup(ctx context.Context, fullName, fullTeamName string) (string, error) {
	if err := u.Provider.DeleteTeamPermission(ctx, fullName, fullTeamName); err != nil && !port.IsNotFound(err) {
		return "", err
	}
	return "permission-deleted", nil
}
