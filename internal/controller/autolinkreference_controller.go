/*
Copyright 2024.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	githubv1alpha1 "github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/domain/port"
	"github.com/benkeil/github-operator/internal/domain/usecase"
	"github.com/benkeil/github-operator/internal/finalizer"
	"github.com/benkeil/github-operator/internal/metrics"
	"github.com/benkeil/github-operator/internal/status"
)

const autolinkReferenceFinalizer = "github.platform.benkeil.de/finalizer"

// AutolinkReferenceReconciler reconciles an AutolinkReference object.
type AutolinkReferenceReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
	Provider port.RemoteProvider
}

//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=autolinkreferences,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=autolinkreferences/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=autolinkreferences/finalizers,verbs=update
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

// Reconcile drives one AutolinkReference through the Finalizer Sequencer,
// the AutolinkReference use-case, and the shared Status & Event Writer. The
// surrogate id returned by a create must survive into .status.id before the
// status patch lands, since the provider exposes no find-by-key-prefix
// lookup cheap enough to rely on every pass.
func (r *AutolinkReferenceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	startedAt := time.Now()

	autolink := &githubv1alpha1.AutolinkReference{}
	if err := r.Get(ctx, req.NamespacedName, autolink); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	writer := &status.Writer{Client: r.Client, Recorder: r.Recorder}
	useCase := usecase.NewAutolinkReference(r.Provider)

	var applyResult usecase.ApplyResult
	var cleanupAction string
	var useCaseErr error

	result, err := finalizer.Sequence(ctx, r.Client, autolink, autolinkReferenceFinalizer,
		func(ctx context.Context) error {
			var applyErr error
			applyResult, applyErr = useCase.Apply(ctx, autolink.Spec.FullName, autolink.Spec, autolink.Status.ID)
			useCaseErr = applyErr
			return applyErr
		},
		func(ctx context.Context) error {
			action, cleanupErr := useCase.Cleanup(ctx, autolink.Spec.FullName, autolink.Status.ID)
			cleanupAction = action
			return cleanupErr
		},
	)
	if err != nil {
		logger.Error(err, "finalizer sequencing failed")
		return ctrl.Result{RequeueAfter: requeueAfterFailure}, err
	}

	metrics.ObserveReconcile("AutolinkReference", startedAt, combineErr(useCaseErr, result.UseCaseErr))
	metrics.ObserveProviderAction("AutolinkReference", applyResult.Action)

	switch result.Decision {
	case finalizer.DecisionAddedFinalizer:
		return ctrl.Result{}, nil

	case finalizer.DecisionApplied:
		patchErr := writer.PatchStatus(ctx, autolink, func() {
			autolink.Status.Healthy = useCaseErr == nil
			if useCaseErr == nil {
				id := applyResult.ID
				autolink.Status.ID = &id
			}
			setCondition(&autolink.Status.Conditions, status.Ready(readyStatus(useCaseErr), readyReason(useCaseErr), readyMessage(useCaseErr), autolink.Generation))
		})
		if applyResult.Action != "" {
			writer.RecordAction(autolink, applyResult.Action)
		}
		if useCaseErr != nil {
			logger.Error(useCaseErr, "autolink reference apply failed")
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		if patchErr != nil {
			logger.Error(patchErr, "autolink reference status patch failed")
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		return ctrl.Result{RequeueAfter: requeueAfterSuccess}, nil

	case finalizer.DecisionCleanedUp:
		if result.UseCaseErr != nil {
			patchErr := writer.PatchStatus(ctx, autolink, func() {
				autolink.Status.Healthy = false
				setCondition(&autolink.Status.Conditions, status.Ready(readyStatus(result.UseCaseErr), readyReason(result.UseCaseErr), readyMessage(result.UseCaseErr), autolink.Generation))
			})
			logger.Error(result.UseCaseErr, "autolink reference cleanup failed")
			if patchErr != nil {
				logger.Error(patchErr, "autolink reference status patch failed")
			}
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		if cleanupAction != "" {
			metrics.ObserveProviderAction("AutolinkReference", cleanupAction)
			writer.RecordAction(autolink, cleanupAction)
		}
		return ctrl.Result{}, nil

	default: // DecisionNoop
		return ctrl.Result{}, nil
	}
}

// SetupWithManager sets up the controller with the Manager.
func (r *AutolinkReferenceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&githubv1alpha1.AutolinkReference{}).
		Complete(r)
}
