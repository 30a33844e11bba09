package diff

import "testing"

func TestDifferFromSpec(t *testing.T) {
	cases := []struct {
		name   string
		spec   interface{}
		actual interface{}
		want   bool
	}{
		{
			name:   "equal scalar, extra actual field ignored",
			spec:   map[string]interface{}{"deleteBranchOnMerge": true},
			actual: map[string]interface{}{"deleteBranchOnMerge": true, "extra": "ignored"},
			want:   false,
		},
		{
			name:   "scalar mismatch",
			spec:   map[string]interface{}{"deleteBranchOnMerge": true},
			actual: map[string]interface{}{"deleteBranchOnMerge": false},
			want:   true,
		},
		{
			name:   "unset spec field imposes no constraint",
			spec:   map[string]interface{}{"deleteBranchOnMerge": nil},
			actual: map[string]interface{}{"deleteBranchOnMerge": false},
			want:   false,
		},
		{
			name: "nested object recurses",
			spec: map[string]interface{}{
				"securityAndAnalysis": map[string]interface{}{
					"secretScanning": map[string]interface{}{"status": "enabled"},
				},
			},
			actual: map[string]interface{}{
				"securityAndAnalysis": map[string]interface{}{
					"secretScanning":   map[string]interface{}{"status": "enabled"},
					"advancedSecurity": map[string]interface{}{"status": "enabled"},
				},
			},
			want: false,
		},
		{
			name: "nested object missing key differs",
			spec: map[string]interface{}{
				"securityAndAnalysis": map[string]interface{}{
					"secretScanning": map[string]interface{}{"status": "enabled"},
				},
			},
			actual: map[string]interface{}{
				"securityAndAnalysis": map[string]interface{}{},
			},
			want: true,
		},
		{
			name:   "array requires equal length",
			spec:   map[string]interface{}{"labels": []interface{}{"a", "b"}},
			actual: map[string]interface{}{"labels": []interface{}{"a"}},
			want:   true,
		},
		{
			name:   "array element-wise equality",
			spec:   map[string]interface{}{"labels": []interface{}{"a", "b"}},
			actual: map[string]interface{}{"labels": []interface{}{"a", "c"}},
			want:   true,
		},
		{
			name:   "array matches",
			spec:   map[string]interface{}{"labels": []interface{}{"a", "b"}},
			actual: map[string]interface{}{"labels": []interface{}{"a", "b"}},
			want:   false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := DifferFromSpec(tc.spec, tc.actual)
			if got != tc.want {
				t.Errorf("DifferFromSpec(%v, %v) = %v, want %v", tc.spec, tc.actual, got, tc.want)
			}
		})
	}
}

func TestDifferFromSpecReflexive(t *testing.T) {
	value := map[string]interface{}{
		"fullName": "acme/api",
		"nested":   map[string]interface{}{"a": 1.0, "b": []interface{}{1.0, 2.0}},
	}
	if DifferFromSpec(value, value) {
		t.Errorf("DifferFromSpec(x, x) should be false")
	}
}
