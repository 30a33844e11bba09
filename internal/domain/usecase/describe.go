package usecase

import (
	"context"

	"github.com/benkeil/github-operator/internal/domain/port"
)

// RepositoryView is the read-only composition of a repository and its
// autolink references, supplemented from the original source's
// get_repository_use_case.rs. The operational CLI that originally consumed
// this is out of scope (spec §1); the composition itself is kept as a
// library-level read path, exercised directly by tests.
type RepositoryView struct {
	Repository *port.RepositoryResponse
	Autolinks  []port.AutolinkReferenceResponse
}

// Describe implements DescribeRepositoryUseCase: it composes GetRepository
// and ListAutolinks into a single read-only view. If the repository does
// not exist, Repository is nil and Autolinks is empty.
func Describe(ctx context.Context, provider port.RemoteProvider, fullName string) (RepositoryView, error) {
	repo, err := provider.GetRepository(ctx, fullName)
	if err != nil {
		return RepositoryView{}, err
	}
	if repo == nil {
		return RepositoryView{}, nil
	}

	autolinks, err := provider.ListAutolinks(ctx, fullName)
	if err != nil {
		return RepositoryView{}, err
	}

	return RepositoryView{Repository: repo, Autolinks: autolinks}, nil
}
