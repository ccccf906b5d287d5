package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vilosource/aidoctool/pkg/types"
)

// Ensure YAMLStore implements Store
var _ Store = (*YAMLStore)(nil)

// ConfigFileName is the filename for the profile document.
const ConfigFileName = "config.yaml"

// YAMLStore persists the profile document as a YAML file in the config
// directory. Each invocation loads the file fresh; nothing is cached across
// processes, so a hand-edited file is simply re-read on the next run.
type YAMLStore struct {
	configDir string
	doc       *types.Document
}

// NewYAMLStore creates a store backed by <configDir>/config.yaml and loads
// the current document. A missing file is the bootstrap state, not an error.
func NewYAMLStore(configDir string) (*YAMLStore, error) {
	store := &YAMLStore{configDir: configDir}
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	store.doc = doc
	return store, nil
}

func (s *YAMLStore) path() string {
	return filepath.Join(s.configDir, ConfigFileName)
}

// Load reads and parses the document from disk.
func (s *YAMLStore) Load() (*types.Document, error) {
	path := s.path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return types.NewDocument(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path constructed from validated configDir
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}
	if doc.Profiles == nil {
		doc.Profiles = make(map[string]*types.Profile)
	}
	for name, p := range doc.Profiles {
		if p == nil {
			return nil, &MalformedConfigError{Path: path, Err: fmt.Errorf("profile %q has no body", name)}
		}
		p.Name = name
	}

	return &doc, nil
}

// Save persists the document atomically. The file mode is forced to
// owner-only on every write, regardless of what it was before.
func (s *YAMLStore) Save(doc *types.Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to a temp file then rename so a concurrent reader never
	// observes a torn document.
	path := s.path()
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write configuration to temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath) // Clean up temp file, ignore error
		return fmt.Errorf("failed to atomically update configuration file: %w", err)
	}

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to restrict configuration file permissions: %w", err)
	}

	return nil
}

// AddProfile inserts a new profile. The first profile ever added becomes the
// default.
func (s *YAMLStore) AddProfile(name string, profile types.Profile) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if _, exists := s.doc.Profiles[name]; exists {
		return fmt.Errorf("profile %q: %w", name, ErrDuplicateProfile)
	}

	doc := s.doc.Clone()
	p := profile.Clone()
	p.Name = name
	doc.Profiles[name] = p
	if doc.DefaultProfile == "" {
		doc.DefaultProfile = name
	}

	return s.commit(doc)
}

// EditProfile merges the provided fields into an existing profile, leaving
// unset fields untouched.
func (s *YAMLStore) EditProfile(name string, update types.ProfileUpdate) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if _, exists := s.doc.Profiles[name]; !exists {
		return fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}

	doc := s.doc.Clone()
	p := doc.Profiles[name]
	if update.Provider != nil {
		p.Provider = *update.Provider
	}
	if update.Model != nil {
		p.Model = *update.Model
	}
	if update.APIKey != nil {
		p.APIKey = *update.APIKey
	}
	if update.Params != nil {
		// Copy so later caller mutations cannot alias store state
		p.Params = types.CloneParams(update.Params)
	}

	return s.commit(doc)
}

// DeleteProfile removes a profile. Deleting the current default clears the
// default pointer; another profile is never promoted silently.
func (s *YAMLStore) DeleteProfile(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if _, exists := s.doc.Profiles[name]; !exists {
		return fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}

	doc := s.doc.Clone()
	delete(doc.Profiles, name)
	if doc.DefaultProfile == name {
		doc.DefaultProfile = ""
	}

	return s.commit(doc)
}

// SetDefault points the default at an existing profile.
func (s *YAMLStore) SetDefault(name string) error {
	if _, exists := s.doc.Profiles[name]; !exists {
		return fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}

	doc := s.doc.Clone()
	doc.DefaultProfile = name

	return s.commit(doc)
}

// ResolveActive returns the requested profile, or the default profile when
// requested is empty.
func (s *YAMLStore) ResolveActive(requested string) (*types.Profile, error) {
	name := requested
	if name == "" {
		if s.doc.DefaultProfile == "" {
			return nil, ErrNoDefaultProfile
		}
		name = s.doc.DefaultProfile
	}

	profile, exists := s.doc.Profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}

	// Return a copy to prevent modification
	return profile.Clone(), nil
}

// ListProfiles returns all profile names in sorted order.
func (s *YAMLStore) ListProfiles() []string {
	names := make([]string, 0, len(s.doc.Profiles))
	for name := range s.doc.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultProfile returns the current default profile name, or empty.
func (s *YAMLStore) DefaultProfile() string {
	return s.doc.DefaultProfile
}

// commit persists the mutated document and, only on success, makes it the
// store's current state. A failed save leaves the in-memory document as it
// was.
func (s *YAMLStore) commit(doc *types.Document) error {
	if err := s.Save(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}
