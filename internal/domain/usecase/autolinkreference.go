package usecase

import (
	"context"

	"github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/domain/model"
	"github.com/benkeil/github-operator/internal/domain/port"
)

// AutolinkReference implements the AutolinkReference Apply/Cleanup contract
// (spec §4.4). It is the subtlest use-case because the provider exposes no
// update operation: autolinks are identified by a surrogate id, created and
// deleted only, so mutation means delete-then-create.
type AutolinkReference struct {
	Provider port.RemoteProvider
}

// NewAutolinkReference constructs an AutolinkReference use-case over provider.
func NewAutolinkReference(provider port.RemoteProvider) *AutolinkReference {
	return &AutolinkReference{Provider: provider}
}

// ApplyResult carries the decision table's outcome: the id to persist in
// status and the action Event to record, if any.
type ApplyResult struct {
	ID     uint32
	Action string
}

// Apply implements the five-row decision table from spec §4.4. statusID is
// nil when .status.id is unset.
func (u *AutolinkReference) Apply(ctx context.Context, fullName string, spec v1alpha1.AutolinkReferenceSpec, statusID *uint32) (ApplyResult, error) {
	if statusID != nil {
		return u.applyWithID(ctx, fullName, spec, *statusID)
	}
	return u.applyWithoutID(ctx, fullName, spec)
}

func (u *AutolinkReference) applyWithID(ctx context.Context, fullName string, spec v1alpha1.AutolinkReferenceSpec, id uint32) (ApplyResult, error) {
	current, err := u.Provider.GetAutolink(ctx, fullName, id)
	if err != nil {
		if !port.IsNotFound(err) {
			return ApplyResult{}, err
		}
		// present but not-found at remote: create.
		return u.create(ctx, fullName, spec)
	}

	if model.AutolinkMatchesRemote(spec, *current) {
		return ApplyResult{ID: current.ID}, nil
	}

	// present, found, spec differs: delete + create.
	if err := u.Provider.DeleteAutolink(ctx, fullName, id); err != nil && !port.IsNotFound(err) {
		return ApplyResult{}, err
	}
	created, err := u.Provider.AddAutolink(ctx, fullName, model.ToAutolinkBody(spec))
	if err != nil {
		return ApplyResult{}, err
	}
	return ApplyResult{ID: created.ID, Action: "autolink-reference-updated"}, nil
}

func (u *AutolinkReference) applyWithoutID(ctx context.Context, fullName string, spec v1alpha1.AutolinkReferenceSpec) (ApplyResult, error) {
	existing, err := u.Provider.ListAutolinks(ctx, fullName)
	if err != nil {
		return ApplyResult{}, err
	}
	if found := model.FindAutolinkByKeyPrefix(existing, spec.KeyPrefix); found != nil {
		// adopt existing id, no event: the CR was re-created but the
		// remote autolink survived.
		return ApplyResult{ID: found.ID}, nil
	}
	return u.create(ctx, fullName, spec)
}

func (u *AutolinkReference) create(ctx context.Context, fullName string, spec v1alpha1.AutolinkReferenceSpec) (ApplyResult, error) {
	created, err := u.Provider.AddAutolink(ctx, fullName, model.ToAutolinkBody(spec))
	if err != nil {
		if !port.IsAlreadyExists(err) {
			return ApplyResult{}, err
		}
		// the key prefix was taken concurrently between the lookup and this
		// create: adopt the existing remote autolink instead of failing.
		existing, listErr := u.Provider.ListAutolinks(ctx, fullName)
		if listErr != nil {
			return ApplyResult{}, listErr
		}
		if found := model.FindAutolinkByKeyPrefix(existing, spec.KeyPrefix); found != nil {
			return ApplyResult{ID: found.ID}, nil
		}
		return ApplyResult{}, err
	}
	return ApplyResult{ID: created.ID, Action: "autolink-reference-created"}, nil
}

// Cleanup deletes the autolink by id if one is known. A missing statusID
// means nothing was ever created remotely, so Cleanup is a no-op and emits
// no Event. A remote 404 is treated as success (idempotent).
func (u *AutolinkReference) Cleanup(ctx context.Context, fullName string, statusID *uint32) (string, error) {
	if statusID == nil {
		return "", nil
	}
	if err := u.Provider.DeleteAutolink(ctx, fullName, *statusID); err != nil && !port.IsNotFound(err) {
		return "", err
	}
	return "autolink-reference-deleted", nil
}
