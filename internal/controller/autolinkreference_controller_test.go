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

var _ = Describe("AutolinkReference controller", func() {
	const autolinkName = "test-autolink"

	typeNamespaceName := types.NamespacedName{Name: autolinkName, Namespace: "default"}

	AfterEach(func() {
		found := &githubv1alpha1.AutolinkReference{}
		if err := k8sClient.Get(ctx, typeNamespaceName, found); err == nil {
			_ = k8sClient.Delete(ctx, found)
		}
	})

	It("creates the remote autolink and persists the surrogate id", func() {
		autolink := &githubv1alpha1.AutolinkReference{
			ObjectMeta: metav1.ObjectMeta{Name: autolinkName, Namespace: "default"},
			Spec: githubv1alpha1.AutolinkReferenceSpec{
				FullName:       "acme/widgets",
				KeyPrefix:      "TICKET-",
				URLTemplate:    "https://example.com/TICKET?query=<num>",
				IsAlphanumeric: false,
			},
		}
		Expect(k8sClient.Create(ctx, autolink)).To(Succeed())

		Eventually(func() bool {
			found := &githubv1alpha1.AutolinkReference{}
			if err := k8sClient.Get(ctx, typeNamespaceName, found); err != nil {
				return false
			}
			return found.Status.Healthy && found.Status.ID != nil
		}, "10s", "100ms").Should(BeTrue())
	})

	It("reports Ready=False with reason=ReconcileFailed when the remote delete fails", func() {
		name := "test-autolink-cleanup-fails"
		cleanupTypeNamespaceName := types.NamespacedName{Name: name, Namespace: "default"}

		autolink := &githubv1alpha1.AutolinkReference{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
			Spec: githubv1alpha1.AutolinkReferenceSpec{
				FullName:       "acme/widgets",
				KeyPrefix:      "BUG-",
				URLTemplate:    "https://example.com/BUG?query=<num>",
				IsAlphanumeric: false,
			},
		}
		Expect(k8sClient.Create(ctx, autolink)).To(Succeed())

		Eventually(func() bool {
			found := &githubv1alpha1.AutolinkReference{}
			if err := k8sClient.Get(ctx, cleanupTypeNamespaceName, found); err != nil {
				return false
			}
			return found.Status.Healthy && found.Status.ID != nil
		}, "10s", "100ms").Should(BeTrue())

		fakeRemote.FailDeleteAutolink = errors.New("remote unavailable")

		Expect(k8sClient.Delete(ctx, autolink)).To(Succeed())

		Eventually(func() string {
			found := &githubv1alpha1.AutolinkReference{}
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

		fakeRemote.FailDeleteAutolink = nil

		Eventually(func() bool {
			found := &githubv1alpha1.AutolinkReference{}
			err := k8sClient.Get(ctx, cleanupTypeNamespaceName, found)
			return err != nil
		}, "10s", "100ms").Should(BeTrue())
	})
})
