// Package scale computes display scale factors for character models.
package scale

import (
	gomath "math"
)

// UniversalMinScale is the lowest minimum scale ever reported.
const UniversalMinScale = 0.01

// DefaultFillRatio is the fraction of the surface a model occupies in dynamic mode.
const DefaultFillRatio = 0.8

// Reference canvas used to normalize surface area in static mode.
const (
	ReferenceWidth  = 1024
	ReferenceHeight = 768
)

// Dynamic mode range factors relative to the fitted scale.
const (
	dynamicMinFactor = 0.1
	dynamicMaxFactor = 2.0
)

// Config is a resolved display scale and the range a user may adjust it in.
type Config struct {
	Scale     float64 `json:"scale" yaml:"scale"`
	MinScale  float64 `json:"min_scale" yaml:"min_scale"`
	MaxScale  float64 `json:"max_scale" yaml:"max_scale"`
	BaseScale float64 `json:"base_scale" yaml:"base_scale"`
}

// Clamp limits s to [MinScale, MaxScale].
func (c Config) Clamp(s float64) float64 {
	return clamp(s, c.MinScale, c.MaxScale)
}

// Measurable reports whether the scale can be used for rendering.
// A zero scale means the surface had not been laid out yet.
func (c Config) Measurable() bool {
	return c.Scale > 0 && !gomath.IsNaN(c.Scale) && !gomath.IsInf(c.Scale, 0)
}

// Options selects the resolution mode.
//
// When ModelWidth and ModelHeight are both non-zero the model's bounding box
// is fitted into the surface (dynamic mode). Otherwise the Profile for
// Character is looked up in Profiles (static mode).
type Options struct {
	ModelWidth  float64
	ModelHeight float64
	FillRatio   float64 // 0 means DefaultFillRatio

	Character string
	Profiles  Profiles // nil means DefaultProfiles
}

// Dynamic reports whether opts resolves in dynamic mode.
func (o Options) Dynamic() bool {
	return o.ModelWidth != 0 && o.ModelHeight != 0
}

// Resolve computes the scale configuration for a surface.
// Callers should only pass measured, non-zero surface dimensions.
func Resolve(surfaceWidth, surfaceHeight float64, opts Options) Config {
	if opts.Dynamic() {
		fill := opts.FillRatio
		if fill <= 0 {
			fill = DefaultFillRatio
		}
		return ResolveDynamic(surfaceWidth, surfaceHeight, opts.ModelWidth, opts.ModelHeight, fill)
	}

	profiles := opts.Profiles
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return ResolveStatic(surfaceWidth, surfaceHeight, profiles.Lookup(opts.Character))
}

// ResolveDynamic fits a model bounding box into fillRatio of the surface,
// preserving aspect ratio.
func ResolveDynamic(surfaceWidth, surfaceHeight, modelWidth, modelHeight, fillRatio float64) Config {
	scaleX := (surfaceWidth * fillRatio) / modelWidth
	scaleY := (surfaceHeight * fillRatio) / modelHeight
	s := gomath.Min(scaleX, scaleY)

	return Config{
		Scale:     s,
		MinScale:  gomath.Max(s*dynamicMinFactor, UniversalMinScale),
		MaxScale:  s * dynamicMaxFactor,
		BaseScale: s,
	}
}

// ResolveStatic scales a profile's base scale by the square root of the
// surface area relative to the reference canvas.
func ResolveStatic(surfaceWidth, surfaceHeight float64, p Profile) Config {
	areaRatio := (surfaceWidth * surfaceHeight) / (ReferenceWidth * ReferenceHeight)
	s := p.BaseScale * gomath.Sqrt(areaRatio) * p.ResponsiveMultiplier
	minScale := gomath.Max(p.MinScale, UniversalMinScale)

	return Config{
		Scale:     clamp(s, minScale, p.MaxScale),
		MinScale:  minScale,
		MaxScale:  p.MaxScale,
		BaseScale: p.BaseScale,
	}
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}
