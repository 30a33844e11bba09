// Package diff implements the sparse "spec is a subset assertion" structural
// comparison used by every use-case to decide whether a remote object needs
// an update. It operates over the JSON-shaped projection of a spec and an
// actual value so that new remote fields never cause spurious churn.
package diff

import "encoding/json"

// DifferFromSpec reports whether actual fails to satisfy spec. Both values
// are marshaled to their JSON representation and compared as a sparse
// subset: a key present and non-null in spec must match in actual; a key
// absent or null in spec imposes no constraint. Traversal short-circuits on
// the first detected difference.
func DifferFromSpec(spec, actual interface{}) bool {
	specValue, err := toJSONValue(spec)
	if err != nil {
		return true
	}
	actualValue, err := toJSONValue(actual)
	if err != nil {
		return true
	}
	return differValue(specValue, actualValue)
}

func toJSONValue(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// differValue compares a spec-side JSON value against an actual-side JSON
// value at the same position in the tree.
func differValue(spec, actual interface{}) bool {
	switch specTyped := spec.(type) {
	case nil:
		// Unset in the spec: no constraint on actual.
		return false

	case map[string]interface{}:
		actualTyped, ok := actual.(map[string]interface{})
		if !ok {
			return true
		}
		return differObject(specTyped, actualTyped)

	case []interface{}:
		actualTyped, ok := actual.([]interface{})
		if !ok {
			return true
		}
		return differArray(specTyped, actualTyped)

	default:
		// Scalars: string, float64 (json numbers), bool.
		return spec != actual
	}
}

func differObject(spec, actual map[string]interface{}) bool {
	for key, specValue := range spec {
		if specValue == nil {
			continue
		}
		actualValue, present := actual[key]
		if !present {
			return true
		}
		if differValue(specValue, actualValue) {
			return true
		}
	}
	return false
}

func differArray(spec, actual []interface{}) bool {
	if len(spec) != len(actual) {
		return true
	}
	for i := range spec {
		if differValue(spec[i], actual[i]) {
			return true
		}
	}
	return false
}
