package errors

import (
	"strings"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Domain", false},
		{"valid with space", "Soft skills", false},
		{"valid unicode", "Fähigkeiten", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " Domain", true},
		{"trailing space", "Domain ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCategory) {
				t.Errorf("ValidateCategory(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidCategory)
			}
		})
	}
}

func TestValidateCategoryOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"default order", []string{"Domain", "Technical", "Personal"}, false},
		{"single", []string{"Only"}, false},

		{"empty", nil, true},
		{"duplicate", []string{"Domain", "Domain"}, true},
		{"invalid entry", []string{"Domain", ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryOrder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategoryOrder(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#821e7d", false},
		{"#FFF", false},
		{"#008CBE", false},

		{"", true},
		{"red", true},
		{"#12345", true},
		{"821e7d", true},
		{"#82\"1e7", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "data/t_shape_content.csv", false},
		{"absolute", "/srv/data/shape.csv", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "data\x00.csv", true},
		{"control", "data\x01.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
