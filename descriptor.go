package themegen

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Declarations maps CSS property names to literal values.
type Declarations map[string]string

// Descriptor is the build configuration consumed by Build and Check.
// It is constructed once at load time and never mutated afterwards.
type Descriptor struct {
	Content []string     // Glob patterns for markup files to scan
	Theme   ThemeSection // Token extensions layered onto every theme
	Plugins []PluginSpec // Ordered plugin activations
	Themes  []ThemeEntry // Ordered theme list; first entry is the default
}

// ThemeSection holds design-token extensions. Extend is emitted as extra
// custom properties on :root and is empty in the default descriptor.
type ThemeSection struct {
	Extend map[string]string
}

// ThemeEntry is one element of the theme list: either a bare reference to a
// built-in preset (Colors is nil) or an override record layered onto the
// preset of the same name.
type ThemeEntry struct {
	Name   string
	Colors map[string]string
}

// IsPreset reports whether the entry references a preset without overrides.
func (e ThemeEntry) IsPreset() bool {
	return len(e.Colors) == 0
}

// PluginSpec is one element of the plugin list. Exactly one field is set:
// Name references a built-in plugin, Utilities registers inline utility
// classes, CSS loads flat class rules from a stylesheet file.
type PluginSpec struct {
	Name      string
	Utilities map[string]Declarations
	CSS       string
}

// Kind returns the plugin kind for diagnostics: "builtin", "utilities" or "css".
func (p PluginSpec) Kind() string {
	switch {
	case p.Name != "":
		return "builtin"
	case p.CSS != "":
		return "css"
	default:
		return "utilities"
	}
}

// LoadDescriptor reads and decodes a themegen.yaml descriptor.
func LoadDescriptor(path string) (*Descriptor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading descriptor %s: %w", path, err)
	}

	return decodeDescriptor(k)
}

// decodeDescriptor maps koanf state onto the Descriptor model. The themes and
// plugins lists are polymorphic in YAML, so they are decoded by hand instead
// of through struct tags.
func decodeDescriptor(k *koanf.Koanf) (*Descriptor, error) {
	desc := &Descriptor{
		Content: k.Strings("content"),
		Theme: ThemeSection{
			Extend: k.StringMap("theme.extend"),
		},
	}

	themes, err := decodeThemeEntries(k.Get("themes"))
	if err != nil {
		return nil, err
	}
	desc.Themes = themes

	plugins, err := decodePluginSpecs(k.Get("plugins"))
	if err != nil {
		return nil, err
	}
	desc.Plugins = plugins

	return desc, nil
}

// decodeThemeEntries decodes the theme list. Each element is either a bare
// preset name string or a map with "name" and "colors" keys.
func decodeThemeEntries(raw any) ([]ThemeEntry, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("themes: expected a list, got %T", raw)
	}

	entries := make([]ThemeEntry, 0, len(list))
	for i, item := range list {
		switch v := item.(type) {
		case string:
			entries = append(entries, ThemeEntry{Name: v})
		case map[string]any:
			entry, err := decodeThemeRecord(v)
			if err != nil {
				return nil, fmt.Errorf("themes[%d]: %w", i, err)
			}
			entries = append(entries, entry)
		default:
			return nil, fmt.Errorf("themes[%d]: expected string or mapping, got %T", i, item)
		}
	}

	return entries, nil
}

// decodeThemeRecord decodes a {name, colors} override record.
func decodeThemeRecord(m map[string]any) (ThemeEntry, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return ThemeEntry{}, fmt.Errorf("override record is missing a name")
	}

	entry := ThemeEntry{Name: name}

	if rawColors, ok := m["colors"]; ok {
		colors, ok := rawColors.(map[string]any)
		if !ok {
			return ThemeEntry{}, fmt.Errorf("%s: colors must be a mapping", name)
		}
		entry.Colors = make(map[string]string, len(colors))
		for role, val := range colors {
			s, ok := val.(string)
			if !ok {
				return ThemeEntry{}, fmt.Errorf("%s: color %q must be a string", name, role)
			}
			entry.Colors[role] = s
		}
	}

	return entry, nil
}

// decodePluginSpecs decodes the plugin list. Each element is either a bare
// built-in name string or a map with a "utilities" or "css" key.
func decodePluginSpecs(raw any) ([]PluginSpec, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("plugins: expected a list, got %T", raw)
	}

	specs := make([]PluginSpec, 0, len(list))
	for i, item := range list {
		switch v := item.(type) {
		case string:
			specs = append(specs, PluginSpec{Name: v})
		case map[string]any:
			spec, err := decodePluginRecord(v)
			if err != nil {
				return nil, fmt.Errorf("plugins[%d]: %w", i, err)
			}
			specs = append(specs, spec)
		default:
			return nil, fmt.Errorf("plugins[%d]: expected string or mapping, got %T", i, item)
		}
	}

	return specs, nil
}

// decodePluginRecord decodes a {utilities: ...} or {css: ...} plugin entry.
func decodePluginRecord(m map[string]any) (PluginSpec, error) {
	if rawCSS, ok := m["css"]; ok {
		path, ok := rawCSS.(string)
		if !ok || path == "" {
			return PluginSpec{}, fmt.Errorf("css plugin entry must be a non-empty path")
		}
		return PluginSpec{CSS: path}, nil
	}

	rawUtils, ok := m["utilities"]
	if !ok {
		return PluginSpec{}, fmt.Errorf("plugin entry must declare utilities or css")
	}

	utils, ok := rawUtils.(map[string]any)
	if !ok {
		return PluginSpec{}, fmt.Errorf("utilities must be a mapping of selectors")
	}

	spec := PluginSpec{Utilities: make(map[string]Declarations, len(utils))}
	for selector, rawDecls := range utils {
		decls, ok := rawDecls.(map[string]any)
		if !ok {
			return PluginSpec{}, fmt.Errorf("utility %q: declarations must be a mapping", selector)
		}
		d := make(Declarations, len(decls))
		for prop, val := range decls {
			d[prop] = fmt.Sprintf("%v", val)
		}
		spec.Utilities[selector] = d
	}

	return spec, nil
}
