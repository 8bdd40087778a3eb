package motion

import (
	"fmt"
	"strings"
)

// Context is the coarse intent behind a contextual selection.
type Context uint8

const (
	ContextIdle Context = iota
	ContextMotion
)

// String returns "idle" or "motion".
func (c Context) String() string {
	switch c {
	case ContextIdle:
		return "idle"
	case ContextMotion:
		return "motion"
	}
	return fmt.Sprintf("Context(%d)", uint8(c))
}

// ParseContext parses "idle" or "motion", ignoring case.
func ParseContext(s string) (Context, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle":
		return ContextIdle, nil
	case "motion":
		return ContextMotion, nil
	}
	return 0, fmt.Errorf("unknown selection context %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Context) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Context) UnmarshalText(text []byte) error {
	parsed, err := ParseContext(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DefaultIdleProbability is the chance an auto-cycle tick picks idle.
const DefaultIdleProbability = 0.6

// CycleContext draws the context for one auto-cycle tick: idle with
// probability idleProbability, motion otherwise.
func CycleContext(rng Source, idleProbability float64) Context {
	if rng.Float64() < idleProbability {
		return ContextIdle
	}
	return ContextMotion
}
