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

const repositoryPermissionFinalizer = "github.platform.benkeil.de/finalizer"

// RepositoryPermissionReconciler reconciles a RepositoryPermission object.
type RepositoryPermissionReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
	Provider port.RemoteProvider
}

//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=repositorypermissions,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=repositorypermissions/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=github.platform.benkeil.de,resources=repositorypermissions/finalizers,verbs=update
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

// Reconcile drives one RepositoryPermission through the Finalizer Sequencer,
// the Permission use-case, and the shared Status & Event Writer.
func (r *RepositoryPermissionReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	startedAt := time.Now()

	permission := &githubv1alpha1.RepositoryPermission{}
	if err := r.Get(ctx, req.NamespacedName, permission); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	writer := &status.Writer{Client: r.Client, Recorder: r.Recorder}
	useCase := usecase.NewPermission(r.Provider)

	var action string
	var cleanupAction string
	var useCaseErr error

	result, err := finalizer.Sequence(ctx, r.Client, permission, repositoryPermissionFinalizer,
		func(ctx context.Context) error {
			var applyErr error
			action, applyErr = useCase.Apply(ctx, permission.Spec.FullName, permission.Spec.FullTeamName, permission.Spec.Permission)
			useCaseErr = applyErr
			return applyErr
		},
		func(ctx context.Context) error {
			cleanupResult, cleanupErr := useCase.Cleanup(ctx, permission.Spec.FullName, permission.Spec.FullTeamName)
			cleanupAction = cleanupResult
			return cleanupErr
		},
	)
	if err != nil {
		logger.Error(err, "finalizer sequencing failed")
		return ctrl.Result{RequeueAfter: requeueAfterFailure}, err
	}

	metrics.ObserveReconcile("RepositoryPermission", startedAt, combineErr(useCaseErr, result.UseCaseErr))
	metrics.ObserveProviderAction("RepositoryPermission", action)

	switch result.Decision {
	case finalizer.DecisionAddedFinalizer:
		return ctrl.Result{}, nil

	case finalizer.DecisionApplied:
		patchErr := writer.PatchStatus(ctx, permission, func() {
			permission.Status.Healthy = useCaseErr == nil
			setCondition(&permission.Status.Conditions, status.Ready(readyStatus(useCaseErr), readyReason(useCaseErr), readyMessage(useCaseErr), permission.Generation))
		})
		if action != "" {
			writer.RecordAction(permission, action)
		}
		if useCaseErr != nil {
			logger.Error(useCaseErr, "permission apply failed")
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		if patchErr != nil {
			logger.Error(patchErr, "permission status patch failed")
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		return ctrl.Result{RequeueAfter: requeueAfterSuccess}, nil

	case finalizer.DecisionCleanedUp:
		if result.UseCaseErr != nil {
			patchErr := writer.PatchStatus(ctx, permission, func() {
				permission.Status.Healthy = false
				setCondition(&permission.Status.Conditions, status.Ready(readyStatus(result.UseCaseErr), readyReason(result.UseCaseErr), readyMessage(result.UseCaseErr), permission.Generation))
			})
			logger.Error(result.UseCaseErr, "permission cleanup failed")
			if patchErr != nil {
				logger.Error(patchErr, "permission status patch failed")
			}
			return ctrl.Result{RequeueAfter: requeueAfterFailure}, nil
		}
		if cleanupAction != "" {
			metrics.ObserveProviderAction("RepositoryPermission", cleanupAction)
			writer.RecordAction(permission, cleanupAction)
		}
		return ctrl.Result{}, nil

	default: // DecisionNoop
		return ctrl.Result{}, nil
	}
}

// SetupWithManager sets up the controller with the Manager.
func (r *RepositoryPermissionReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&githubv1alpha1.RepositoryPermission{}).
		Complete(r)
}
