package scale

// Profile holds the legacy static scale settings for one character.
type Profile struct {
	BaseScale            float64 `json:"base_scale" yaml:"base_scale"`
	MinScale             float64 `json:"min_scale" yaml:"min_scale"`
	MaxScale             float64 `json:"max_scale" yaml:"max_scale"`
	ResponsiveMultiplier float64 `json:"responsive_multiplier" yaml:"responsive_multiplier"`
}

// Valid reports whether the profile can produce a usable scale.
func (p Profile) Valid() bool {
	return p.BaseScale > 0 && p.MinScale > 0 && p.MaxScale >= p.MinScale && p.ResponsiveMultiplier > 0
}

// DefaultProfileKey is used when a character has no profile.
const DefaultProfileKey = "hiyori"

// Profiles maps character identifiers to their static scale profile.
type Profiles map[string]Profile

// Lookup returns the profile for key, falling back to DefaultProfileKey and
// finally to the built-in hiyori values.
func (p Profiles) Lookup(key string) Profile {
	if prof, ok := p[key]; ok {
		return prof
	}
	if prof, ok := p[DefaultProfileKey]; ok {
		return prof
	}
	return hiyoriProfile
}

var hiyoriProfile = Profile{BaseScale: 0.2, MinScale: 0.05, MaxScale: 0.8, ResponsiveMultiplier: 0.8}

// DefaultProfiles returns a fresh copy of the built-in profile table.
func DefaultProfiles() Profiles {
	return Profiles{
		"hiyori":         hiyoriProfile,
		"rice":           {BaseScale: 0.27, MinScale: 0.05, MaxScale: 1.2, ResponsiveMultiplier: 1.0},
		"shizuku":        {BaseScale: 0.35, MinScale: 0.05, MaxScale: 1.0, ResponsiveMultiplier: 0.9},
		"haru":           {BaseScale: 0.18, MinScale: 0.05, MaxScale: 0.9, ResponsiveMultiplier: 0.85},
		"mao":            {BaseScale: 0.25, MinScale: 0.05, MaxScale: 1.0, ResponsiveMultiplier: 0.8},
		"mark":           {BaseScale: 0.35, MinScale: 0.05, MaxScale: 1.1, ResponsiveMultiplier: 0.95},
		"natori":         {BaseScale: 0.12, MinScale: 0.05, MaxScale: 0.95, ResponsiveMultiplier: 0.88},
		"wanko":          {BaseScale: 0.5, MinScale: 0.05, MaxScale: 1.2, ResponsiveMultiplier: 1.0},
		"hiyori_free_en": hiyoriProfile,
	}
}
