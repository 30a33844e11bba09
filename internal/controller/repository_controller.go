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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
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
	"github.com/benkeil/github-operator/internal/tracing"
)

const repositoryFinalizer = "github.platform.benkeil.de/finalizer"

const (
	requeueAfterSuccess = 60 * time.Second
	requeueAfterFailure = 5 * time.Second
)

// RepositoryReconciler reconciles a Repository object.
type RepositoryReconciler struct {
	client.Client
	Scheme        *runtime.Scheme
	Recorder      record.EventRecorder
	Provider      port.RemoteProvider
	CleanupPolicy usecase.RepositoryCleanupPolicy
}

//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=repositories,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=repositories/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=repositories/finalizers,verbs=update
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

// Reconcile drives one Repository through the Finalizer Sequencer, the
// Repository use-case, and the shared Status & Event Writer.
func (r *RepositoryReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	startedAt := time.Now()

	repo := &githubv1alpha1.Repository{}
	if err := r.Get(ctx, req.NamespacedName, repo); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	writer := &status.Writer{Client: r.Client, Recorder: r.Recorder}
	useCase := usecase.NewRepository(r.Provider)

	var actions []string
	var useCaseErr error

	result, err := finalizer.Sequence(ctx, r.Client, repo, repositoryFinalizer,
		func(ctx context.Context) error {
			ctx, span := tracing.FromContext(ctx).Start(ctx, "Repository.Apply")
			defer span.End()
			var applyErr error
			actions, applyErr = useCase.Apply(ctx, repo.Spec.FullName, repo.Spec)
			useCaseErr = applyErr
			return applyErr
		},
		func(ctx context.Context) error {
			ctx, span := tracing.FromContext(ctx).Start(ctx, "Repository.Cleanup")
			defer span.End()
			return useCase.Cleanup(ctx, repo.Spec.FullName, r.CleanupPolicy)
		},
	)
	if err != nil {
		logger.Error(err, "finalizer sequencing failed")
		return ctrl.Result{RequeueAfter: requeueAfterFailure}, err
	}

	metrics.ObserveReconcile("Repository", startedAt, combineErr(useCaseErr, result.UseCaseErr))
	for _, action := range actions {
		metrics.ObserveProviderAction("Repository", action)
	}

	switch result.Decision {
	case finalizer.DecisionAddedFinalizer:
		return ctrl.Result{}, nil

	case finalizer.DecisionApplied:
		patchErr := writer.PatchStatus(ctx, repo, func() {
			repo.Status.Healthy = useCaseErr == nil
			meta := status.Ready(readyStatus(useCaseErr), readyReason(useCaseErr), readyMessage(useCaseErr), repo.Generation)
			setCondition(&repo.Status.Conditions, meta)
		})
		for _, action := range actions {
			writer.RecordAction(repo, action)
		}
		if useCaseErr != nil {
			logger.Error(useCaseErr, "repository apply failed")
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		if patchErr != nil {
			logger.Error(patchErr, "repository status patch failed")
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		return ctrl.Result{RequeueAfter: requeueAfterSuccess}, nil

	case finalizer.DecisionCleanedUp:
		if result.UseCaseErr != nil {
			patchErr := writer.PatchStatus(ctx, repo, func() {
				repo.Status.Healthy = false
				setCondition(&repo.Status.Conditions, status.Ready(readyStatus(result.UseCaseErr), readyReason(result.UseCaseErr), readyMessage(result.UseCaseErr), repo.Generation))
			})
			logger.Error(result.UseCaseErr, "repository cleanup failed")
			if patchErr != nil {
				logger.Error(patchErr, "repository status patch failed")
			}
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		return ctrl.Result{}, nil

	default: // DecisionNoop
		return ctrl.Result{}, nil
	}
}

func readyStatus(err error) metav1.ConditionStatus {
	if err != nil {
		return metav1.ConditionFalse
	}
	return metav1.ConditionTrue
}

func readyReason(err error) string {
	if err != nil {
		return "ReconcileFailed"
	}
	return "ApplySucceeded"
}

func readyMessage(err error) string {
	if err != nil {
		return err.Error()
	}
	return "reconciled successfully"
}

// combineErr picks whichever of applyErr/cleanupErr is non-nil, since a
// given reconcile only ever goes through one of the Apply or Cleanup
// branches and the metrics outcome must reflect whichever one ran.
func combineErr(applyErr, cleanupErr error) error {
	if applyErr != nil {
		return applyErr
	}
	return cleanupErr
}

func setCondition(conditions *[]metav1.Condition, condition metav1.Condition) {
	for i := range *conditions {
		if (*conditions)[i].Type == condition.Type {
			(*conditions)[i] = condition
			return
		}
	}
	*conditions = append(*conditions, condition)
}

// SetupWithManager sets up the controller with the Manager.
func (r *RepositoryReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&githubv1alpha1.Repository{}).
		Complete(r)
}
