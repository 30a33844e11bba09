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

// RepositoryPermissionSpec defines the desired team role on a repository.
type RepositoryPermissionSpec struct {
	// FullName identifies the repository as "owner/name". Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="fullName is immutable"
	FullName string `json:"fullName"`

	// FullTeamName identifies the team as "org/team_slug". Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="fullTeamName is immutable"
	FullTeamName string `json:"fullTeamName"`

	// Permission is the role name granted to the team on the repository (e.g. "pull",
	// "push", "maintain", "admin").
	Permission string `json:"permission"`
}

// RepositoryPermissionStatus defines the observed state of RepositoryPermission.
type RepositoryPermissionStatus struct {
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type" protobuf:"bytes,1,rep,name=conditions"`

	Healthy bool `json:"healthy,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:shortName=permission
//+kubebuilder:printcolumn:name="Full Name",type=string,JSONPath=".spec.fullName"
//+kubebuilder:printcolumn:name="Team",type=string,JSONPath=".spec.fullTeamName"
//+kubebuilder:printcolumn:name="Healthy",type=boolean,JSONPath=".status.healthy"

// RepositoryPermission is the Schema for the repositorypermissions API.
type RepositoryPermission struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RepositoryPermissionSpec   `json:"spec,omitempty"`
	Status RepositoryPermissionStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// RepositoryPermissionList contains a list of RepositoryPermission.
type RepositoryPermissionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []RepositoryPermission `json:"items"`
}

func init() {
	SchemeBuilder.Register(&RepositoryPermission{}, &RepositoryPermissionList{})
}
