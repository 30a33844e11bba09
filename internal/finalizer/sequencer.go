// Package finalizer implements the Finalizer Sequencer: it routes an object
// to either the Apply or the Cleanup use-case based on the deletion
// timestamp and finalizer-token presence, and owns installing/removing the
// token itself.
package finalizer

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/benkeil/github-operator/internal/domain/port"
)

// Decision records which branch the sequencer took.
type Decision int

const (
	// DecisionAddedFinalizer means the token was missing and has just been
	// added; the caller should return and let the ensuing update event
	// re-trigger reconciliation naturally.
	DecisionAddedFinalizer Decision = iota
	// DecisionApplied means the Apply use-case was invoked.
	DecisionApplied
	// DecisionCleanedUp means the Cleanup use-case was invoked.
	DecisionCleanedUp
	// DecisionNoop means deletion is pending and the token is already gone;
	// there is nothing left for this reconciler to do.
	DecisionNoop
)

// Result distinguishes finalizer-plumbing failure (reported via the second
// return value of Sequence, always retryable) from use-case failure
// (reported via UseCaseErr, retried with a status update).
type Result struct {
	Decision   Decision
	UseCaseErr error
}

// Sequence implements the four-way branch from spec: add-finalizer,
// Apply, Cleanup, or no-op, given object obj and finalizer token.
func Sequence(ctx context.Context, c client.Client, obj client.Object, token string, apply, cleanup func(context.Context) error) (Result, error) {
	deleting := obj.GetDeletionTimestamp() != nil
	hasToken := controllerutil.ContainsFinalizer(obj, token)

	switch {
	case !deleting && !hasToken:
		controllerutil.AddFinalizer(obj, token)
		if err := c.Update(ctx, obj); err != nil {
			return Result{}, port.NewError("add-finalizer", port.KindFinalizer, err)
		}
		return Result{Decision: DecisionAddedFinalizer}, nil

	case !deleting && hasToken:
		err := apply(ctx)
		return Result{Decision: DecisionApplied, UseCaseErr: err}, nil

	case deleting && hasToken:
		if err := cleanup(ctx); err != nil {
			return Result{Decision: DecisionCleanedUp, UseCaseErr: err}, nil
		}
		controllerutil.RemoveFinalizer(obj, token)
		if err := c.Update(ctx, obj); err != nil {
			return Result{Decision: DecisionCleanedUp}, port.NewError("remove-finalizer", port.KindFinalizer, err)
		}
		return Result{Decision: DecisionCleanedUp}, nil

	default: // deleting && !hasToken
		return Result{Decision: DecisionNoop}, nil
	}
}
