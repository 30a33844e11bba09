package model

import (
	"github.com/benkeil/github-operator/api/v1alpha1"
	"github.com/benkeil/github-operator/internal/domain/port"
)

// AutolinkMatchesRemote reports whether resp satisfies spec. Equality here
// is the flat (key_prefix, url_template, is_alphanumeric) comparison spec.md
// §4.4 calls for, not the sparse structural diff: an autolink has no
// optional fields, so every declared field is load-bearing.
func AutolinkMatchesRemote(spec v1alpha1.AutolinkReferenceSpec, resp port.AutolinkReferenceResponse) bool {
	return spec.KeyPrefix == resp.KeyPrefix &&
		spec.URLTemplate == resp.URLTemplate &&
		spec.IsAlphanumeric == resp.IsAlphanumeric
}

// ToAutolinkBody projects an AutolinkReferenceSpec onto the provider's
// create payload shape.
func ToAutolinkBody(spec v1alpha1.AutolinkReferenceSpec) port.AutolinkReferenceBody {
	return port.AutolinkReferenceBody{
		KeyPrefix:      spec.KeyPrefix,
		URLTemplate:    spec.URLTemplate,
		IsAlphanumeric: spec.IsAlphanumeric,
	}
}

// FindAutolinkByKeyPrefix returns the entry in refs whose KeyPrefix matches
// keyPrefix, used by the adopt-by-listing path when status.id is absent.
func FindAutolinkByKeyPrefix(refs []port.AutolinkReferenceResponse, keyPrefix string) *port.AutolinkReferenceResponse {
	for i := range refs {
		if refs[i].KeyPrefix == keyPrefix {
			return &refs[i]
		}
	}
	return nil
}
