package validation

import (
	"testing"

	"github.com/vnykmshr/sluice/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		field     string
		value     int
		wantError bool
	}{
		{"positive value", "test", "capacity", 10, false},
		{"positive value 1", "test", "capacity", 1, false},
		{"zero value", "test", "capacity", 0, true},
		{"negative value", "test", "capacity", -1, true},
		{"large positive", "test", "capacity", 1000000, false},
		{"large negative", "test", "capacity", -1000000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive(tt.module, tt.field, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidatePositiveFloat(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		field     string
		value     float64
		wantError bool
	}{
		{"positive value", "test", "leakRate", 10.5, false},
		{"small positive", "test", "leakRate", 0.001, false},
		{"zero value", "test", "leakRate", 0.0, true},
		{"negative value", "test", "leakRate", -1.5, true},
		{"large positive", "test", "leakRate", 99999.99, false},
		{"large negative", "test", "leakRate", -99999.99, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveFloat(tt.module, tt.field, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{"non-empty string", "identity", false},
		{"single character", "x", false},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty("test", "identity", tt.value)

			if tt.wantError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
