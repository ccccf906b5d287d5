package llm

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned by Resolve for unregistered provider ids.
var ErrUnknownProvider = errors.New("unknown provider")

// ConstructionError indicates a registered factory failed to build its
// capability. It wraps the underlying cause for diagnostics; callers never
// inspect the cause structurally.
type ConstructionError struct {
	Provider string
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct provider %q: %v", e.Provider, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// GenerationError is the single failure kind a Generator reports. It wraps
// whatever transport or backend fault occurred.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (provider %q): %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
