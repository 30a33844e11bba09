// Package status implements the shared Status & Event Writer: after each
// Apply or Cleanup attempt, patch .status via a merge patch and emit a best
// effort Event, the same way every one of the three reconcilers needs to.
package status

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// ReadyConditionType is the canonical condition summarizing the last
// reconciliation outcome.
const ReadyConditionType = "Ready"

// ReconcilingReason is the fixed Event reason every action is recorded
// under; the action itself distinguishes what happened.
const ReconcilingReason = "Reconciling"

// Writer patches .status via a server-side merge patch and emits Events. It
// is shared by the Repository, AutolinkReference, and RepositoryPermission
// reconcilers rather than duplicated per kind.
type Writer struct {
	Client   client.Client
	Recorder record.EventRecorder
}

// Ready builds the Ready condition carried in every status patch.
func Ready(status metav1.ConditionStatus, reason, message string, generation int64) metav1.Condition {
	return metav1.Condition{
		Type:               ReadyConditionType,
		Status:             status,
		Reason:             reason,
		Message:            message,
		ObservedGeneration: generation,
	}
}

// PatchStatus takes a snapshot of obj, runs mutate (expected to update obj's
// status fields in place), and issues a merge patch of .status carrying only
// the fields mutate changed.
func (w *Writer) PatchStatus(ctx context.Context, obj client.Object, mutate func()) error {
	original, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return nil
	}
	mutate()
	return w.Client.Status().Patch(ctx, obj, client.MergeFrom(original))
}

// RecordAction emits a Normal Event addressed to obj with the fixed
// reason=Reconciling and the given per-action action string. Publishing is
// fire-and-forget: EventRecorder.Event reports no error, so a failed publish
// is not surfaced to the caller and does not fail the reconciliation.
func (w *Writer) RecordAction(obj runtime.Object, action string) {
	w.Recorder.Event(obj, corev1.EventTypeNormal, ReconcilingReason, action)
}
