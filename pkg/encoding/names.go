// Package encoding provides text normalization for asset names found in model files.
package encoding

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName converts a display name to NFC and trims surrounding
// whitespace and null bytes. Model files authored on macOS often carry
// decomposed (NFD) Japanese file names.
func NormalizeName(s string) string {
	s = strings.Trim(s, " \t\r\n\x00")
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// SlashPath normalizes an asset path to forward slashes.
func SlashPath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// BaseName returns the last path segment of an asset path, accepting both
// slash styles.
func BaseName(path string) string {
	path = SlashPath(path)
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// TrimSuffixFold removes suffix from s ignoring ASCII case.
func TrimSuffixFold(s, suffix string) string {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}
