package themegen

// Built-in theme presets. Each preset maps semantic color roles to hex
// values. The tables are never handed out directly; ResolveThemes copies
// them before layering overrides.
//
// Role names follow the usual component-library convention: paired
// foreground roles carry a -content suffix, base-100/200/300 are the page
// background ramp.

// PresetNames lists the built-in presets in their canonical order.
var PresetNames = []string{"light", "dark", "cupcake", "cyberpunk"}

var presets = map[string]map[string]string{
	"light": {
		"primary":           "#570df8",
		"primary-content":   "#e0d2fe",
		"secondary":         "#f000b8",
		"secondary-content": "#ffd1f4",
		"accent":            "#1ecebc",
		"accent-content":    "#07312d",
		"neutral":           "#2b3440",
		"neutral-content":   "#d7dde4",
		"base-100":          "#ffffff",
		"base-200":          "#f2f2f2",
		"base-300":          "#e5e6e6",
		"base-content":      "#1f2937",
		"info":              "#3abff8",
		"success":           "#36d399",
		"warning":           "#fbbd23",
		"error":             "#f87272",
	},
	"dark": {
		"primary":           "#661ae6",
		"primary-content":   "#ffffff",
		"secondary":         "#d926aa",
		"secondary-content": "#ffffff",
		"accent":            "#1fb2a5",
		"accent-content":    "#ffffff",
		"neutral":           "#2a323c",
		"neutral-content":   "#a6adbb",
		"base-100":          "#1d232a",
		"base-200":          "#191e24",
		"base-300":          "#15191e",
		"base-content":      "#a6adbb",
		"info":              "#3abff8",
		"success":           "#36d399",
		"warning":           "#fbbd23",
		"error":             "#f87272",
	},
	"cupcake": {
		"primary":           "#65c3c8",
		"primary-content":   "#00363a",
		"secondary":         "#ef9fbc",
		"secondary-content": "#771d38",
		"accent":            "#eeaf3a",
		"accent-content":    "#5a3b07",
		"neutral":           "#291334",
		"neutral-content":   "#e9e7e7",
		"base-100":          "#faf7f5",
		"base-200":          "#efeae6",
		"base-300":          "#e7e2df",
		"base-content":      "#291334",
		"info":              "#3abff8",
		"success":           "#36d399",
		"warning":           "#fbbd23",
		"error":             "#f87272",
	},
	"cyberpunk": {
		"primary":           "#ff7598",
		"primary-content":   "#16182d",
		"secondary":         "#75d1f0",
		"secondary-content": "#16182d",
		"accent":            "#c07eec",
		"accent-content":    "#16182d",
		"neutral":           "#423f00",
		"neutral-content":   "#ffee00",
		"base-100":          "#ffee00",
		"base-200":          "#e5d600",
		"base-300":          "#ccbe00",
		"base-content":      "#16182d",
		"info":              "#3abff8",
		"success":           "#36d399",
		"warning":           "#fbbd23",
		"error":             "#f87272",
	},
}

// Preset returns a copy of the named preset table, or false if the name is
// not a built-in preset.
func Preset(name string) (map[string]string, bool) {
	base, ok := presets[name]
	if !ok {
		return nil, false
	}

	out := make(map[string]string, len(base))
	for role, val := range base {
		out[role] = val
	}
	return out, true
}
