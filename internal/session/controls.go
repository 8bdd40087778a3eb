package session

import (
	"errors"

	"github.com/Faultbox/live2d-viewer/pkg/color"
)

// ErrInvalidColor is returned for background colours not in #rrggbb form.
var ErrInvalidColor = color.ErrInvalid

// ErrInvalidScale is returned for non-positive control scales.
var ErrInvalidScale = errors.New("invalid scale")

// DefaultBackgroundColor is the surface colour of a new session.
const DefaultBackgroundColor = color.Default

// Controls is the control panel state of a session.
type Controls struct {
	Scale           float64 `json:"scale"`
	X               float64 `json:"x"`        // offset from surface centre
	Y               float64 `json:"y"`        // offset from surface centre
	Rotation        float64 `json:"rotation"` // degrees
	ShowHitAreas    bool    `json:"show_hit_areas"`
	ShowBackground  bool    `json:"show_background"`
	BackgroundColor string  `json:"background_color"`
}

// ControlUpdate is a partial change to Controls. Nil fields are left as is.
type ControlUpdate struct {
	Scale           *float64 `json:"scale,omitempty"`
	X               *float64 `json:"x,omitempty"`
	Y               *float64 `json:"y,omitempty"`
	Rotation        *float64 `json:"rotation,omitempty"`
	ShowHitAreas    *bool    `json:"show_hit_areas,omitempty"`
	ShowBackground  *bool    `json:"show_background,omitempty"`
	BackgroundColor *string  `json:"background_color,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u ControlUpdate) Empty() bool {
	return u.Scale == nil && u.X == nil && u.Y == nil && u.Rotation == nil &&
		u.ShowHitAreas == nil && u.ShowBackground == nil && u.BackgroundColor == nil
}
