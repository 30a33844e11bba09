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
	//nolint:golint
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	githubv1alpha1 "github.com/benkeil/github-operator/api/v1alpha1"
)

var _ = Describe("Repository controller", func() {
	const repositoryName = "test-repository"

	typeNamespaceName := types.NamespacedName{Name: repositoryName, Namespace: "default"}

	AfterEach(func() {
		repo := &githubv1alpha1.Repository{}
		if err := k8sClient.Get(ctx, typeNamespaceName, repo); err == nil {
			_ = k8sClient.Delete(ctx, repo)
		}
	})

	It("creates the remote repository and reports Healthy", func() {
		By("creating the custom resource")
		repo := &githubv1alpha1.Repository{
			ObjectMeta: metav1.ObjectMeta{Name: repositoryName, Namespace: "default"},
			Spec:       githubv1alpha1.RepositorySpec{FullName: "acme/widgets"},
		}
		Expect(k8sClient.Create(ctx, repo)).To(Succeed())

		By("waiting for the status to report Healthy")
		Eventually(func() bool {
			found := &githubv1alpha1.Repository{}
			if err := k8sClient.Get(ctx, typeNamespaceName, found); err != nil {
				return false
			}
			return found.Status.Healthy
		}, "10s", "100ms").Should(BeTrue())

		By("persisting the finalizer")
		found := &githubv1alpha1.Repository{}
		Expect(k8sClient.Get(ctx, typeNamespaceName, found)).To(Succeed())
		Expect(found.Finalizers).To(ContainElement(repositoryFinalizer))
	})

	It("removes the finalizer on delete", func() {
		repo := &githubv1alpha1.Repository{
			ObjectMeta: metav1.ObjectMeta{Name: repositoryName, Namespace: "default"},
			Spec:       githubv1alpha1.RepositorySpec{FullName: "acme/doomed"},
		}
		Expect(k8sClient.Create(ctx, repo)).To(Succeed())

		Eventually(func() bool {
			found := &githubv1alpha1.Repository{}
			if err := k8sClient.Get(ctx, typeNamespaceName, found); err != nil {
				return false
			}
			return found.Status.Healthy
		}, "10s", "100ms").Should(BeTrue())

		Expect(k8sClient.Delete(ctx, repo)).To(Succeed())

		Eventually(func() bool {
			found := &githubv1alpha1.Repository{}
			err := k8sClient.Get(ctx, typeNamespaceName, found)
			return err != nil
		}, "10s", "100ms").Should(BeTrue())
	})
})
