package themegen

import (
	"fmt"
	"regexp"
)

// ResolvedTheme is a fully-merged theme ready for emission.
type ResolvedTheme struct {
	Name   string
	Colors map[string]string
}

// hexColorPattern matches #rgb, #rrggbb and #rrggbbaa literals.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidHexColor reports whether s is a hexadecimal color literal.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ResolveThemes resolves the theme list in order. Bare entries become copies
// of the named preset; override records are shallow-merged onto the preset of
// the same name, override keys winning and all other roles inheriting
// unchanged. The first resolved theme is the application default.
func ResolveThemes(entries []ThemeEntry) ([]ResolvedTheme, error) {
	resolved := make([]ResolvedTheme, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		if seen[entry.Name] {
			return nil, fmt.Errorf("theme %q listed more than once", entry.Name)
		}
		seen[entry.Name] = true

		base, ok := Preset(entry.Name)
		if !ok {
			return nil, fmt.Errorf("unknown theme preset %q", entry.Name)
		}

		resolved = append(resolved, ResolvedTheme{
			Name:   entry.Name,
			Colors: mergeColors(base, entry.Colors),
		})
	}

	return resolved, nil
}

// mergeColors layers override onto base with last-key-wins semantics.
// base is owned by the caller (Preset already returns a copy), so it is
// mutated in place; override is never touched.
func mergeColors(base, override map[string]string) map[string]string {
	for role, val := range override {
		base[role] = val
	}
	return base
}
