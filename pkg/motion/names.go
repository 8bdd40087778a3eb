package motion

import (
	"fmt"

	"github.com/Faultbox/live2d-viewer/pkg/encoding"
)

// MotionFileSuffix is stripped from motion file names to form display names.
const MotionFileSuffix = ".motion3.json"

// Descriptions used when a group has no metadata entry.
const (
	DefaultDescription = "Custom animation"  // shown in catalogs
	UnknownDescription = "Unknown animation" // shown when playing
)

// Motion priorities, matching the Cubism framework levels.
const (
	PriorityNone   = 0
	PriorityIdle   = 1
	PriorityNormal = 2
	PriorityForce  = 3
)

// Metadata is the static description of a motion group for one character.
type Metadata struct {
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority" yaml:"priority"`
	AutoPlay    bool   `json:"auto_play" yaml:"auto_play"`
}

// MetadataTable maps group names to metadata. Lookups are case-sensitive.
type MetadataTable map[string]Metadata

// Lookup returns the metadata for group.
func (t MetadataTable) Lookup(group string) (Metadata, bool) {
	m, ok := t[group]
	return m, ok
}

// Describe returns the group description, or DefaultDescription.
func (t MetadataTable) Describe(group string) string {
	if m, ok := t[group]; ok && m.Description != "" {
		return m.Description
	}
	return DefaultDescription
}

// PlayDescription returns the group description for playback log lines, or
// UnknownDescription.
func (t MetadataTable) PlayDescription(group string) string {
	if m, ok := t[group]; ok && m.Description != "" {
		return m.Description
	}
	return UnknownDescription
}

// DisplayName derives a clip name from its source file: the last path
// segment without MotionFileSuffix. Falls back to "Motion {index}".
func DisplayName(file string, index int) string {
	name := encoding.BaseName(file)
	name = encoding.TrimSuffixFold(name, MotionFileSuffix)
	name = encoding.NormalizeName(name)
	if name == "" {
		return fmt.Sprintf("Motion %d", index)
	}
	return name
}
