package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

// Validator provides input validation for profile fields before they reach
// the store.
type Validator struct {
	profileNamePattern *regexp.Regexp
	providerIDPattern  *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		// Profile name: alphanumeric with underscores, hyphens, dots (1-64 chars)
		profileNamePattern: regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`),

		// Provider id: lowercase alphanumeric with underscores and hyphens
		providerIDPattern: regexp.MustCompile(`^[a-z0-9_-]{1,64}$`),
	}
}

// ValidateProfileName validates a profile name.
func (v *Validator) ValidateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	if len(name) > 64 {
		return fmt.Errorf("profile name must be 64 characters or less")
	}

	if !v.profileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name: must contain only alphanumeric characters, dots, underscores, and hyphens")
	}

	return nil
}

// ValidateProviderID validates a provider identifier. The id is not checked
// against the registry here; unknown providers surface at resolve time.
func (v *Validator) ValidateProviderID(id string) error {
	if id == "" {
		return fmt.Errorf("provider cannot be empty")
	}

	if !v.providerIDPattern.MatchString(id) {
		return fmt.Errorf("invalid provider id: must contain only lowercase alphanumeric characters, underscores, and hyphens")
	}

	return nil
}

// ValidateModel validates a model name. Models are opaque strings; only
// emptiness and control characters are rejected.
func (v *Validator) ValidateModel(model string) error {
	if model == "" {
		return fmt.Errorf("model cannot be empty")
	}

	for _, r := range model {
		if unicode.IsControl(r) {
			return fmt.Errorf("model name contains invalid characters")
		}
	}

	return nil
}
