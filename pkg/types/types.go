package types

// Profile represents a named LLM configuration: which provider backend to
// use, which model, the credential for it, and any provider-specific
// parameters. The credential may be a literal secret or an environment
// variable reference of the form ${NAME}; the store never interprets it.
type Profile struct {
	Name     string         `yaml:"-" json:"name"`
	Provider string         `yaml:"provider" json:"provider"`
	Model    string         `yaml:"model" json:"model"`
	APIKey   string         `yaml:"api_key" json:"api_key"`
	Params   map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Params = CloneParams(p.Params)
	return &out
}

// ProfileUpdate carries a partial edit of a profile. Nil fields are left
// untouched; a non-nil Params replaces the params mapping wholesale.
type ProfileUpdate struct {
	Provider *string
	Model    *string
	APIKey   *string
	Params   map[string]any
}

// Document is the persisted configuration aggregate: the set of named
// profiles plus the default-profile pointer. An empty DefaultProfile means
// no default is set.
type Document struct {
	DefaultProfile string              `yaml:"default_profile,omitempty" json:"default_profile,omitempty"`
	Profiles       map[string]*Profile `yaml:"profiles" json:"profiles"`
}

// NewDocument returns the bootstrap-empty document: no profiles, no default.
func NewDocument() *Document {
	return &Document{Profiles: make(map[string]*Profile)}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		DefaultProfile: d.DefaultProfile,
		Profiles:       make(map[string]*Profile, len(d.Profiles)),
	}
	for name, p := range d.Profiles {
		out.Profiles[name] = p.Clone()
	}
	return out
}

// CloneParams returns a deep copy of a params mapping.
func CloneParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies the value shapes yaml.v3 produces for nested
// params: maps, sequences, and scalars.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneParams(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
