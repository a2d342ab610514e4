package validators

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := v.RegisterValidation("cuit", Cuit); err != nil {
		t.Fatalf("register cuit: %v", err)
	}
	if err := v.RegisterValidation("rp", RP); err != nil {
		t.Fatalf("register rp: %v", err)
	}
	return v
}

func TestCuit(t *testing.T) {
	v := newValidate(t)
	type body struct {
		Cuit string `validate:"cuit"`
	}

	cases := []struct {
		value string
		valid bool
	}{
		{"20123456789", true},
		{"00000000000", true},
		{"2012345678", false},    // 10 digits
		{"201234567890", false},  // 12 digits
		{"20-12345678-9", false}, // separators
		{"2012345678a", false},
		{" 20123456789", false},
		{"", false},
	}

	for _, tc := range cases {
		err := v.Struct(body{Cuit: tc.value})
		if tc.valid && err != nil {
			t.Fatalf("cuit %q: expected valid, got %v", tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("cuit %q: expected rejection", tc.value)
		}
	}
}

func TestRP(t *testing.T) {
	v := newValidate(t)
	type body struct {
		RP string `validate:"rp"`
	}

	cases := []struct {
		value string
		valid bool
	}{
		{"RP-100", true},
		{"A", true},
		{"ABC-123-XYZ", true},
		{strings.Repeat("A", 50), true},
		{strings.Repeat("A", 51), false},
		{"rp-100", false}, // lowercase
		{"RP 100", false}, // whitespace
		{"RP_100", false}, // underscore
		{"", false},
	}

	for _, tc := range cases {
		err := v.Struct(body{RP: tc.value})
		if tc.valid && err != nil {
			t.Fatalf("rp %q: expected valid, got %v", tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("rp %q: expected rejection", tc.value)
		}
	}
}
