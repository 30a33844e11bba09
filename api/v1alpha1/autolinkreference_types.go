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

// AutolinkReferenceSpec defines the desired state of a child autolink reference attached to
// a repository.
type AutolinkReferenceSpec struct {
	// FullName identifies the owning repository as "owner/name". Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="fullName is immutable"
	FullName string `json:"fullName"`

	// KeyPrefix is the logical natural key of this autolink reference on the repository.
	// Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="keyPrefix is immutable"
	KeyPrefix string `json:"keyPrefix"`

	// URLTemplate is the target URL, containing "<num>" where the matched reference number
	// is substituted.
	URLTemplate string `json:"urlTemplate"`

	// IsAlphanumeric controls whether the key prefix matches alphanumeric references (true)
	// or numeric-only references (false).
	IsAlphanumeric bool `json:"isAlphanumeric"`
}

// AutolinkReferenceStatus defines the observed state of AutolinkReference.
type AutolinkReferenceStatus struct {
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type" protobuf:"bytes,1,rep,name=conditions"`

	Healthy bool `json:"healthy,omitempty"`

	// ID is the provider-assigned surrogate key for this autolink reference. The provider
	// exposes no update operation, only create and delete by id, so this id must survive
	// operator restarts to avoid creating duplicates.
	ID *uint32 `json:"id,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:printcolumn:name="Full Name",type=string,JSONPath=".spec.fullName"
//+kubebuilder:printcolumn:name="Key Prefix",type=string,JSONPath=".spec.keyPrefix"
//+kubebuilder:printcolumn:name="Id",type=integer,JSONPath=".status.id"
//+kubebuilder:printcolumn:name="Healthy",type=boolean,JSONPath=".status.healthy"

// AutolinkReference is the Schema for the autolinkreferences API.
type AutolinkReference struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AutolinkReferenceSpec   `json:"spec,omitempty"`
	Status AutolinkReferenceStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// AutolinkReferenceList contains a list of AutolinkReference.
type AutolinkReferenceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AutolinkReference `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AutolinkReference{}, &AutolinkReferenceList{})
}
