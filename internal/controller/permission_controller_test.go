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
	"errors"

	//nolint:golint
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	githubv1alpha1 "github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/status"
)

var _ = Describe("RepositoryPermission controller", func() {
	const permissionName = "test-permission"

	typeNamespaceName := types.NamespacedName{Name: permissionName, Namespace: "default"}

	AfterEach(func() {
		found := &githubv1alpha1.RepositoryPermission{}
		if err := k8sClient.Get(ctx, typeNamespaceName, found); err == nil {
			_ = k8sClient.Delete(ctx, found)
		}
	})

	It("grants the declared role on the remote repository", func() {
		permission := &githubv1alpha1.RepositoryPermission{
			ObjectMeta: metav1.ObjectMeta{Name: permissionName, Namespace: "default"},
			Spec: githubv1alpha1.RepositoryPermissionSpec{
				FullName:     "acme/widgets",
				FullTeamName: "acme/platform",
				Permission:   "push",
			},
		}
		Expect(k8sClient.Create(ctx, permission)).To(Succeed())

		Eventually(func() bool {
			found := &githubv1alpha1.RepositoryPermission{}
			if err := k8sClient.Get(ctx, typeNamespaceName, found); err != nil {
				return false
			}
			return found.Status.Healthy
		}, "10s", "100ms").Should(BeTrue())
	})

	It("reports Ready=False with reason=ReconcileFailed when the remote delete fails", func() {
		name := "test-permission-cleanup-fails"
		cleanupTypeNamespaceName := types.NamespacedName{Name: name, Namespace: "default"}

		permission := &githubv1alpha1.RepositoryPermission{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
			Spec: githubv1alpha1.RepositoryPermissionSpec{
				FullName:     "acme/widgets",
				FullTeamName: "acme/security",
				Permission:   "push",
			},
		}
		Expect(k8sClient.Create(ctx, permission)).To(Succeed())

		Eventually(func() bool {
			found := &githubv1alpha1.RepositoryPermission{}
			if err := k8sClient.Get(ctx, cleanupTypeNamespaceName, found); err != nil {
				return false
			}
			return found.Status.Healthy
		}, "10s", "100ms").Should(BeTrue())

		fakeRemote.FailDeleteTeamPermission = errors.New("remote unavailable")

		Expect(k8sClient.Delete(ctx, permission)).To(Succeed())

		Eventually(func() string {
			found := &githubv1alpha1.RepositoryPermission{}
			if err := k8sClient.Get(ctx, cleanupTypeNamespaceName, found); err != nil {
				return string(metav1.ConditionUnknown)
			}
			for _, c := range found.Status.Conditions {
				if c.Type == status.ReadyConditionType {
					return string(c.Status) + "/" + c.Reason
				}
			}
			return string(metav1.ConditionUnknown)
		}, "10s", "100ms").Should(Equal(string(metav1.ConditionFalse) + "/ReconcileFailed"))

		fakeRemote.FailDeleteTeamPermission = nil

		Eventually(func() bool {
			found := &githubv1alpha1.RepositoryPermission{}
			err := k8sClient.Get(ctx, cleanupTypeNamespaceName, found)
			return err != nil
		}, "10s", "100ms").Should(BeTrue())
	})
})
