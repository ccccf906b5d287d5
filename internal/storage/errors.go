package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for the profile store. Callers match them with errors.Is.
var (
	// ErrProfileNotFound is returned when a named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when adding a profile whose name is taken.
	ErrDuplicateProfile = errors.New("profile already exists")
	// ErrNoDefaultProfile is returned when no profile was requested and no
	// default is set.
	ErrNoDefaultProfile = errors.New("no default profile set")
	// ErrReadOnly is returned by every mutating operation on a read-only
	// configuration source.
	ErrReadOnly = errors.New("configuration source is read-only")
)

// MalformedConfigError indicates the persisted document exists but could not
// be parsed into the expected shape. It wraps the parse failure.
type MalformedConfigError struct {
	Path string
	Err  error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("malformed configuration file %s: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error {
	return e.Err
}
