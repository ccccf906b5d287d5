package storage

import "github.com/vilosource/aidoctool/pkg/types"

// Store defines authoritative read/write access to the profile document.
type Store interface {
	// Load re-reads the document from the backing source. A missing source
	// yields the bootstrap-empty document, not an error.
	Load() (*types.Document, error)
	// Save persists the given document. Read-only backings return ErrReadOnly.
	Save(doc *types.Document) error

	AddProfile(name string, profile types.Profile) error
	EditProfile(name string, update types.ProfileUpdate) error
	DeleteProfile(name string) error
	SetDefault(name string) error

	// ResolveActive returns the named profile, or the default profile when
	// requested is empty.
	ResolveActive(requested string) (*types.Profile, error)
	ListProfiles() []string
	DefaultProfile() string
}
