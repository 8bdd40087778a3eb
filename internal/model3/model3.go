// Package model3 provides a headless model handle backed by a Cubism model
// settings file (.model3.json, or the older .model.json layout).
//
// Only the motion definitions are read; rendering state is recorded so that
// the surrounding session can be observed without a renderer.
package model3

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/Faultbox/live2d-viewer/pkg/motion"
)

// Model settings errors.
var (
	ErrInvalidJSON   = errors.New("invalid model settings JSON")
	ErrInvalidMotion = errors.New("invalid motion definitions")
	ErrNoMotions     = errors.New("model settings have no motion section")
)

// Settings file suffixes.
const (
	SettingsSuffix       = ".model3.json"
	LegacySettingsSuffix = ".model.json"
)

// Play is one recorded playback request.
type Play struct {
	Group string
	Index int
}

// Transform is the last applied display state.
type Transform struct {
	Scale         float64
	X, Y          float64
	Rotation      float64 // radians
	HitAreas      bool
	Background    bool
	BackgroundRGB uint32
	BoundsW       float64
	BoundsH       float64
}

// Model is a headless model handle.
type Model struct {
	Name string
	Path string

	mu        sync.Mutex
	defs      []motion.Definition
	ready     bool
	err       error
	transform Transform
	plays     []Play
}

// Open reads a settings file from disk.
func Open(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, ModelName(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse builds a model from settings JSON. A document without a motion
// section, or whose section is not an object, yields a model that is not
// ready. An empty section is ready with no groups.
func Parse(data []byte, name string) (*Model, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	m := &Model{Name: name}

	defs, err := parseMotions(data)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.defs = defs
	m.ready = true
	return m, nil
}

// parseMotions reads FileReferences.Motions (Cubism 3+) or the top-level
// motions object (Cubism 2), keeping document order.
func parseMotions(data []byte) ([]motion.Definition, error) {
	section := gjson.GetBytes(data, "FileReferences.Motions")
	fileKey := "File"
	if !section.Exists() {
		legacy := gjson.GetBytes(data, "motions")
		if legacy.Exists() {
			section = legacy
			fileKey = "file"
		}
	}
	if !section.Exists() {
		return nil, ErrNoMotions
	}
	if !section.IsObject() {
		return nil, ErrInvalidMotion
	}

	var (
		defs   []motion.Definition
		badErr error
	)
	section.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			badErr = fmt.Errorf("%w: group %s is not a list", ErrInvalidMotion, key.String())
			return false
		}
		def := motion.Definition{Group: key.String()}
		for _, entry := range value.Array() {
			def.Files = append(def.Files, entry.Get(fileKey).String())
		}
		defs = append(defs, def)
		return true
	})
	if badErr != nil {
		return nil, badErr
	}
	return defs, nil
}

// ModelName derives a model name from its settings path.
func ModelName(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	switch {
	case strings.HasSuffix(lower, SettingsSuffix):
		return base[:len(base)-len(SettingsSuffix)]
	case strings.HasSuffix(lower, LegacySettingsSuffix):
		return base[:len(base)-len(LegacySettingsSuffix)]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Err reports why the model is not ready, if it is not.
func (m *Model) Err() error {
	return m.err
}

// MotionDefinitions returns the motion groups, or false when the settings
// did not carry a usable motion section.
func (m *Model) MotionDefinitions() ([]motion.Definition, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return nil, false
	}
	out := make([]motion.Definition, len(m.defs))
	copy(out, m.defs)
	return out, true
}

// SetBounds records the model's intrinsic bounding box.
func (m *Model) SetBounds(width, height float64) {
	m.mu.Lock()
	m.transform.BoundsW, m.transform.BoundsH = width, height
	m.mu.Unlock()
}

// Bounds returns the bounding box, zero when unknown.
func (m *Model) Bounds() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transform.BoundsW, m.transform.BoundsH
}

// Play records a playback request.
func (m *Model) Play(group string, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return motion.ErrModelNotReady
	}
	m.plays = append(m.plays, Play{Group: group, Index: index})
	return nil
}

// SetScale applies a uniform scale.
func (m *Model) SetScale(s float64) {
	m.mu.Lock()
	m.transform.Scale = s
	m.mu.Unlock()
}

// SetPosition moves the model anchor.
func (m *Model) SetPosition(x, y float64) {
	m.mu.Lock()
	m.transform.X, m.transform.Y = x, y
	m.mu.Unlock()
}

// SetRotation sets rotation in radians.
func (m *Model) SetRotation(radians float64) {
	m.mu.Lock()
	m.transform.Rotation = radians
	m.mu.Unlock()
}

// SetHitAreaVisibility toggles hit-area overlays.
func (m *Model) SetHitAreaVisibility(visible bool) {
	m.mu.Lock()
	m.transform.HitAreas = visible
	m.mu.Unlock()
}

// SetBackgroundVisibility toggles the model background.
func (m *Model) SetBackgroundVisibility(visible bool) {
	m.mu.Lock()
	m.transform.Background = visible
	m.mu.Unlock()
}

// SetBackgroundColor sets the surface clear colour as 0xRRGGBB.
func (m *Model) SetBackgroundColor(rgb uint32) {
	m.mu.Lock()
	m.transform.BackgroundRGB = rgb
	m.mu.Unlock()
}

// Transform returns the last applied display state.
func (m *Model) Transform() Transform {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transform
}

// Plays returns recorded playback requests, oldest first.
func (m *Model) Plays() []Play {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Play, len(m.plays))
	copy(out, m.plays)
	return out
}
