// Package model bridges the cluster-facing CR specs (api/v1alpha1) and the
// provider-facing wire models (domain/port) with the conversions and
// precondition shims the use-cases need.
package model

import (
	"github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/domain/port"
)

// AutoConfigureRepository returns a copy of spec with provider preconditions
// filled in. It is total: it never fails, it only fills in the one
// documented default (advanced_security.status=enabled when
// secret_scanning.status=enabled and advanced_security is unset).
func AutoConfigureRepository(spec v1alpha1.RepositorySpec) v1alpha1.RepositorySpec {
	configured := *spec.DeepCopy()

	if configured.SecurityAndAnalysis == nil {
		return configured
	}
	secretScanning := configured.SecurityAndAnalysis.SecretScanning
	if secretScanning != nil && secretScanning.Status == "enabled" && configured.SecurityAndAnalysis.AdvancedSecurity == nil {
		configured.SecurityAndAnalysis.AdvancedSecurity = &v1alpha1.SecurityAndAnalysisFeatureStatus{Status: "enabled"}
	}
	return configured
}

// ToRepositoryProviderSpec projects a configured RepositorySpec onto the
// provider's update/create payload shape.
func ToRepositoryProviderSpec(spec v1alpha1.RepositorySpec) port.RepositorySpec {
	out := port.RepositorySpec{
		DeleteBranchOnMerge: spec.DeleteBranchOnMerge,
		AllowAutoMerge:      spec.AllowAutoMerge,
		AllowSquashMerge:    spec.AllowSquashMerge,
		AllowMergeCommit:    spec.AllowMergeCommit,
		AllowRebaseMerge:    spec.AllowRebaseMerge,
		AllowUpdateBranch:   spec.AllowUpdateBranch,
	}
	if spec.SecurityAndAnalysis != nil {
		out.SecurityAndAnalysis = securityAndAnalysisToMap(spec.SecurityAndAnalysis)
	}
	return out
}

// RepositoryDiffValue projects a configured RepositorySpec onto the sparse
// value tree the structural diff compares against. Unset (nil) fields are
// represented as Go nils, which the JSON projection turns into the "ignored"
// null marker.
func RepositoryDiffValue(spec v1alpha1.RepositorySpec) map[string]interface{} {
	value := map[string]interface{}{
		"deleteBranchOnMerge": spec.DeleteBranchOnMerge,
		"allowAutoMerge":      spec.AllowAutoMerge,
		"allowSquashMerge":    spec.AllowSquashMerge,
		"allowMergeCommit":    spec.AllowMergeCommit,
		"allowRebaseMerge":    spec.AllowRebaseMerge,
		"allowUpdateBranch":   spec.AllowUpdateBranch,
	}
	if spec.SecurityAndAnalysis != nil {
		value["securityAndAnalysis"] = securityAndAnalysisToMap(spec.SecurityAndAnalysis)
	}
	return value
}

// RepositoryActualValue projects a provider response onto the same shape
// RepositoryDiffValue produces, so the two can be compared directly.
func RepositoryActualValue(resp *port.RepositoryResponse) map[string]interface{} {
	return map[string]interface{}{
		"deleteBranchOnMerge": resp.DeleteBranchOnMerge,
		"allowAutoMerge":      resp.AllowAutoMerge,
		"allowSquashMerge":    resp.AllowSquashMerge,
		"allowMergeCommit":    resp.AllowMergeCommit,
		"allowRebaseMerge":    resp.AllowRebaseMerge,
		"allowUpdateBranch":   resp.AllowUpdateBranch,
		"securityAndAnalysis": resp.SecurityAndAnalysis,
	}
}

func securityAndAnalysisToMap(sa *v1alpha1.SecurityAndAnalysis) map[string]interface{} {
	out := map[string]interface{}{}
	addFeature(out, "advancedSecurity", sa.AdvancedSecurity)
	addFeature(out, "secretScanning", sa.SecretScanning)
	addFeature(out, "secretScanningPushProtection", sa.SecretScanningPushProtection)
	addFeature(out, "dependabotSecurityUpdates", sa.DependabotSecurityUpdates)
	addFeature(out, "secretScanningValidityChecks", sa.SecretScanningValidityChecks)
	return out
}

func addFeature(out map[string]interface{}, key string, feature *v1alpha1.SecurityAndAnalysisFeatureStatus) {
	if feature == nil {
		return
	}
	out[key] = map[string]interface{}{"status": feature.Status}
}
