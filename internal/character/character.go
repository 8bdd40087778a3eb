// Package character holds the per-character configuration records that drive
// scale resolution and motion selection.
package character

import (
	"fmt"
	"strings"

	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// TapMode selects what a click on the model plays.
type TapMode string

const (
	TapContextual TapMode = "contextual" // contextual motion pick
	TapRandom     TapMode = "random"     // uniform pick over all groups
)

// Valid reports whether m is a known tap mode.
func (m TapMode) Valid() bool {
	return m == TapContextual || m == TapRandom
}

// Character is the configuration of one viewable model.
type Character struct {
	ID          string               `yaml:"id" json:"id"`
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description" json:"description"`
	ModelPath   string               `yaml:"model_path" json:"model_path"`
	IdleGroup   string               `yaml:"idle_group" json:"idle_group"`
	TapMode     TapMode              `yaml:"tap_mode" json:"tap_mode"`
	AutoCycle   bool                 `yaml:"auto_cycle" json:"auto_cycle"`
	Features    []string             `yaml:"features" json:"features"`
	Scale       scale.Profile        `yaml:"scale" json:"scale"`
	Animations  motion.MetadataTable `yaml:"animations" json:"animations"`
}

// Validate checks that the record can drive a session.
func (c *Character) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("character id is empty")
	}
	if c.IdleGroup == "" {
		return fmt.Errorf("character %s: idle_group is empty", c.ID)
	}
	if !c.TapMode.Valid() {
		return fmt.Errorf("character %s: unknown tap_mode %q", c.ID, c.TapMode)
	}
	if !c.Scale.Valid() {
		return fmt.Errorf("character %s: invalid scale profile %+v", c.ID, c.Scale)
	}
	return nil
}

// NewSelector returns a motion selector bound to the character's idle group.
func (c *Character) NewSelector(rng motion.Source) *motion.Selector {
	return motion.NewSelector(c.IdleGroup, rng)
}

// clone returns a deep copy so registry callers cannot mutate shared tables.
func (c *Character) clone() *Character {
	out := *c
	out.Features = append([]string(nil), c.Features...)
	if c.Animations != nil {
		out.Animations = make(motion.MetadataTable, len(c.Animations))
		for k, v := range c.Animations {
			out.Animations[k] = v
		}
	}
	return &out
}
