// Package secret handles the credential conventions: expanding environment
// variable references at the point of use, and masking values for display.
// Resolved or literal credential values must never be logged or echoed.
package secret

import (
	"os"
	"regexp"
)

// envRefPattern matches a credential that is an environment variable
// reference, e.g. ${ANTHROPIC_API_KEY}. Only this exact shape is treated as
// a reference; anything else is a literal.
var envRefPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// IsEnvRef reports whether the credential is an environment reference.
func IsEnvRef(credential string) bool {
	return envRefPattern.MatchString(credential)
}

// Resolve expands an environment reference to the variable's current value.
// Literal credentials pass through unchanged. An unset variable resolves to
// the empty string; the provider rejects it at construction time.
func Resolve(credential string) string {
	if m := envRefPattern.FindStringSubmatch(credential); m != nil {
		return os.Getenv(m[1])
	}
	return credential
}

// Mask obscures a credential for display, keeping just enough of the ends
// to be recognizable. Environment references are shown as-is since they
// carry no secret material.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if IsEnvRef(value) {
		return value
	}
	if len(value) <= 8 {
		return "********"
	}
	return value[:4] + "..." + value[len(value)-4:]
}
