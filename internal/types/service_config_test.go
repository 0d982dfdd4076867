package types

import "testing"

func TestValidateServiceConfigAcceptsKnownShapes(t *testing.T) {
	cases := []struct {
		serviceType string
		raw         string
	}{
		{"database", `{"engine":"postgres","size":"medium","replicas":2}`},
		{"compute", `{"cpu":4,"memory":"8GB","scaling":"auto"}`},
		{"storage", `{"type":"object","redundancy":"high"}`},
		{"function", `{"runtime":"node18","timeout":30}`},
		{"network", `{"tier":"premium","bandwidth":100}`},
		{"web3", `{"provider":"oasis","features":["sso","mfa"]}`},
		{"spatial", `{"provider":"mapbox","features":["routing"]}`},
		{"3d_amp", `{"renderer":"webgl","quality":"high"}`},
	}

	for _, tc := range cases {
		if err := ValidateServiceConfig(tc.serviceType, []byte(tc.raw)); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.serviceType, err)
		}
	}
}

func TestValidateServiceConfigAllowsEmptyDocument(t *testing.T) {
	if err := ValidateServiceConfig("compute", nil); err != nil {
		t.Fatalf("nil config: %v", err)
	}
	if err := ValidateServiceConfig("compute", []byte("  ")); err != nil {
		t.Fatalf("blank config: %v", err)
	}
}

func TestValidateServiceConfigRejectsUnknownType(t *testing.T) {
	if err := ValidateServiceConfig("quantum", []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown service type")
	}
}

func TestValidateServiceConfigRejectsUnknownFields(t *testing.T) {
	if err := ValidateServiceConfig("database", []byte(`{"engine":"postgres","flavor":"spicy"}`)); err == nil {
		t.Fatal("expected error for unknown config field")
	}
}

func TestValidateServiceConfigRejectsWrongFieldType(t *testing.T) {
	if err := ValidateServiceConfig("compute", []byte(`{"cpu":"lots"}`)); err == nil {
		t.Fatal("expected error for mistyped config field")
	}
}
