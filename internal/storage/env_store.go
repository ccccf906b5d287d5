package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/vilosource/aidoctool/pkg/types"
)

// Ensure EnvStore implements Store
var _ Store = (*EnvStore)(nil)

// EnvProfileName is the synthetic profile name for the environment backing.
const EnvProfileName = "env-profile"

// Environment variables read by the env backing.
const (
	EnvProvider = "AIDOCTOOL_PROVIDER"
	EnvModel    = "AIDOCTOOL_MODEL"
	EnvAPIKey   = "AIDOCTOOL_API_KEY"
	EnvParams   = "AIDOCTOOL_PARAMS"
)

// EnvStore is a read-only backing sourced from process environment
// variables. It exposes a single synthetic profile which is always the
// default. Every mutating operation fails with ErrReadOnly; this is a
// deliberate capability restriction, not an oversight.
type EnvStore struct {
	doc *types.Document
}

// NewEnvStore creates a store from the AIDOCTOOL_* environment variables.
func NewEnvStore() *EnvStore {
	s := &EnvStore{}
	s.doc, _ = s.Load()
	return s
}

// Load rebuilds the document from the current environment.
func (s *EnvStore) Load() (*types.Document, error) {
	doc := types.NewDocument()
	doc.Profiles[EnvProfileName] = &types.Profile{
		Name:     EnvProfileName,
		Provider: os.Getenv(EnvProvider),
		Model:    os.Getenv(EnvModel),
		APIKey:   os.Getenv(EnvAPIKey),
		Params:   parseEnvParams(os.Getenv(EnvParams)),
	}
	doc.DefaultProfile = EnvProfileName
	return doc, nil
}

// Save is not supported for the environment backing.
func (s *EnvStore) Save(doc *types.Document) error {
	return fmt.Errorf("save: %w", ErrReadOnly)
}

func (s *EnvStore) AddProfile(name string, profile types.Profile) error {
	return fmt.Errorf("add profile: %w", ErrReadOnly)
}

func (s *EnvStore) EditProfile(name string, update types.ProfileUpdate) error {
	return fmt.Errorf("edit profile: %w", ErrReadOnly)
}

func (s *EnvStore) DeleteProfile(name string) error {
	return fmt.Errorf("delete profile: %w", ErrReadOnly)
}

func (s *EnvStore) SetDefault(name string) error {
	return fmt.Errorf("set default: %w", ErrReadOnly)
}

// ResolveActive returns the synthetic env profile.
func (s *EnvStore) ResolveActive(requested string) (*types.Profile, error) {
	name := requested
	if name == "" {
		name = s.doc.DefaultProfile
	}

	profile, exists := s.doc.Profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}
	return profile.Clone(), nil
}

func (s *EnvStore) ListProfiles() []string {
	return []string{EnvProfileName}
}

func (s *EnvStore) DefaultProfile() string {
	return s.doc.DefaultProfile
}

// parseEnvParams parses "key=value,key2=value2" into a params mapping.
// Values stay strings; adapters coerce what they understand.
func parseEnvParams(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	params := make(map[string]any)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		params[key] = value
	}
	if len(params) == 0 {
		return nil
	}
	return params
}
