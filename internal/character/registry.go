package character

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// ErrUnknownCharacter is returned for ids missing from the registry.
var ErrUnknownCharacter = errors.New("unknown character")

// Registry is an ordered set of characters keyed by id.
type Registry struct {
	chars map[string]*Character
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{chars: make(map[string]*Character)}
}

// Builtin returns a registry with the sample characters.
func Builtin() *Registry {
	r := NewRegistry()
	for _, c := range builtin() {
		c := c
		r.put(&c)
	}
	return r
}

func (r *Registry) put(c *Character) {
	if _, ok := r.chars[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.chars[c.ID] = c
}

// Get returns a copy of the character with the given id.
func (r *Registry) Get(id string) (*Character, error) {
	c, ok := r.chars[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharacter, id)
	}
	return c.clone(), nil
}

// List returns copies of all characters in registration order.
func (r *Registry) List() []*Character {
	out := make([]*Character, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.chars[id].clone())
	}
	return out
}

// Len returns the number of characters.
func (r *Registry) Len() int {
	return len(r.order)
}

// Profiles returns the static scale table for all characters.
func (r *Registry) Profiles() scale.Profiles {
	p := make(scale.Profiles, len(r.chars))
	for id, c := range r.chars {
		p[id] = c.Scale
	}
	return p
}

// Merge adds c, or overlays its non-zero fields onto an existing character
// with the same id. The result must validate.
func (r *Registry) Merge(c Character) error {
	var merged Character
	if existing, ok := r.chars[c.ID]; ok {
		merged = *existing.clone()
		overlay(&merged, &c)
	} else {
		merged = c
		fillDefaults(&merged)
	}

	if err := merged.Validate(); err != nil {
		return err
	}
	r.put(&merged)
	return nil
}

// overridesFile is the YAML layout of a character overrides file.
type overridesFile struct {
	Characters []Character `yaml:"characters"`
}

// LoadFile merges the characters listed in a YAML file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, c := range f.Characters {
		if err := r.Merge(c); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func fillDefaults(c *Character) {
	if c.Name == "" {
		c.Name = c.ID
	}
	if c.IdleGroup == "" {
		c.IdleGroup = DefaultIdleGroup
	}
	if c.TapMode == "" {
		c.TapMode = TapContextual
	}
	if c.Scale == (scale.Profile{}) {
		c.Scale = scale.DefaultProfiles().Lookup(scale.DefaultProfileKey)
	}
}

func overlay(dst, src *Character) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.ModelPath != "" {
		dst.ModelPath = src.ModelPath
	}
	if src.IdleGroup != "" {
		dst.IdleGroup = src.IdleGroup
	}
	if src.TapMode != "" {
		dst.TapMode = src.TapMode
	}
	if src.AutoCycle {
		dst.AutoCycle = true
	}
	if len(src.Features) > 0 {
		dst.Features = append([]string(nil), src.Features...)
	}
	if src.Scale != (scale.Profile{}) {
		dst.Scale = src.Scale
	}
	if len(src.Animations) > 0 {
		if dst.Animations == nil {
			dst.Animations = make(motion.MetadataTable, len(src.Animations))
		}
		for k, v := range src.Animations {
			dst.Animations[k] = v
		}
	}
}
