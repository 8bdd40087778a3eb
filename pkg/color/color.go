// Package color parses and formats "#rrggbb" surface colours.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned for colours not in #rrggbb form.
var ErrInvalid = errors.New("invalid background color")

// Default is the surface colour of a new session.
const Default = "#222222"

// Parse parses "#rrggbb" (the leading # is optional) into 0xRRGGBB.
func Parse(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return uint32(v), nil
}

// Format renders 0xRRGGBB as "#rrggbb".
func Format(rgb uint32) string {
	return fmt.Sprintf("#%06x", rgb&0xffffff)
}

// Normalize parses s and formats it back, so "#FF8800" and "ff8800"
// both become "#ff8800".
func Normalize(s string) (string, error) {
	rgb, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(rgb), nil
}
