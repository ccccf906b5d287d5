package validation

import (
	"strings"
	"testing"
)

func TestValidateProfileName(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "work", false},
		{"with separators", "team.prod_2024-a", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"spaces", "my profile", true},
		{"shell metacharacters", "p;rm -rf", true},
		{"path traversal", "../etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateProfileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProviderID(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"openai", "openai", false},
		{"with hyphen", "azure-openai", false},
		{"empty", "", true},
		{"uppercase", "OpenAI", true},
		{"spaces", "open ai", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateProviderID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProviderID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateModel(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateModel("claude-sonnet-4-20250514"); err != nil {
		t.Errorf("Unexpected error for valid model: %v", err)
	}
	if err := v.ValidateModel("gpt-4o mini"); err != nil {
		t.Errorf("Unexpected error for model with space: %v", err)
	}
	if err := v.ValidateModel(""); err == nil {
		t.Error("Expected error for empty model")
	}
	if err := v.ValidateModel("bad\nmodel"); err == nil {
		t.Error("Expected error for control characters")
	}
}
