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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SecurityAndAnalysisFeatureStatus toggles one security-and-analysis feature on a repository.
type SecurityAndAnalysisFeatureStatus struct {
	// Status is either "enabled" or "disabled".
	// +kubebuilder:validation:Enum=enabled;disabled
	Status string `json:"status"`
}

// SecurityAndAnalysis mirrors the provider's security_and_analysis object. Every field is
// independently optional; an unset field means "no opinion", not "disabled".
type SecurityAndAnalysis struct {
	AdvancedSecurity             *SecurityAndAnalysisFeatureStatus `json:"advancedSecurity,omitempty"`
	SecretScanning               *SecurityAndAnalysisFeatureStatus `json:"secretScanning,omitempty"`
	SecretScanningPushProtection *SecurityAndAnalysisFeatureStatus `json:"secretScanningPushProtection,omitempty"`
	DependabotSecurityUpdates    *SecurityAndAnalysisFeatureStatus `json:"dependabotSecurityUpdates,omitempty"`
	SecretScanningValidityChecks *SecurityAndAnalysisFeatureStatus `json:"secretScanningValidityChecks,omitempty"`
}

// RepositorySpec defines the desired configuration of a named remote repository.
type RepositorySpec struct {
	// FullName identifies the repository as "owner/name". Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="fullName is immutable"
	FullName string `json:"fullName"`

	// SecurityAndAnalysis configures the provider's security and analysis features.
	SecurityAndAnalysis *SecurityAndAnalysis `json:"securityAndAnalysis,omitempty"`

	DeleteBranchOnMerge *bool `json:"deleteBranchOnMerge,omitempty"`
	AllowAutoMerge      *bool `json:"allowAutoMerge,omitempty"`
	AllowSquashMerge    *bool `json:"allowSquashMerge,omitempty"`
	AllowMergeCommit    *bool `json:"allowMergeCommit,omitempty"`
	AllowRebaseMerge    *bool `json:"allowRebaseMerge,omitempty"`
	AllowUpdateBranch   *bool `json:"allowUpdateBranch,omitempty"`
}

// RepositoryStatus defines the observed state of Repository.
type RepositoryStatus struct {
	// Conditions represent the observations of a Repository's current state.
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type" protobuf:"bytes,1,rep,name=conditions"`

	// Healthy mirrors the Ready condition: true iff the latest reconciliation succeeded.
	Healthy bool `json:"healthy,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:shortName=repo
//+kubebuilder:printcolumn:name="Full Name",type=string,JSONPath=".spec.fullName"
//+kubebuilder:printcolumn:name="Healthy",type=boolean,JSONPath=".status.healthy"

// Repository is the Schema for the repositories API. It declares the desired configuration
// of a repository hosted on a remote code-hosting service.
type Repository struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RepositorySpec   `json:"spec,omitempty"`
	Status RepositoryStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// RepositoryList contains a list of Repository.
type RepositoryList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Repository `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Repository{}, &RepositoryList{})
}
