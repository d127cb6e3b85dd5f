package themegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heroIconRegistry() *Registry {
	reg := NewRegistry()
	reg.AddUtility("hero-icon", Declarations{
		"display":     "inline-block",
		"width":       "1.25rem",
		"height":      "1.25rem",
		"flex-shrink": "0",
	}, "plugins[1]")
	return reg
}

func TestEmit(t *testing.T) {
	themes, err := ResolveThemes([]ThemeEntry{
		{Name: "light", Colors: map[string]string{"primary": "#4f46e5"}},
		{Name: "dark"},
	})
	require.NoError(t, err)

	css := Emit(themes, nil, heroIconRegistry(), nil)

	// First theme doubles as the document default.
	assert.Contains(t, css, ":root, [data-theme=\"light\"] {")
	assert.Contains(t, css, "[data-theme=\"dark\"] {")
	assert.Contains(t, css, "--color-primary: #4f46e5;")

	// Utility block with sorted declarations.
	assert.Contains(t, css, ".hero-icon {\n  display: inline-block;\n  flex-shrink: 0;\n  height: 1.25rem;\n  width: 1.25rem;\n}")

	// Dark keeps its preset primary.
	darkPreset, _ := Preset("dark")
	assert.Contains(t, css, "--color-primary: "+darkPreset["primary"]+";")
}

func TestEmit_ByteIdenticalAcrossRuns(t *testing.T) {
	entries := []ThemeEntry{
		{Name: "light", Colors: map[string]string{"primary": "#4f46e5", "accent": "#f59e0b"}},
		{Name: "cyberpunk"},
	}

	render := func() string {
		themes, err := ResolveThemes(entries)
		require.NoError(t, err)
		return Emit(themes, map[string]string{"radius": "0.5rem"}, heroIconRegistry(), nil)
	}

	first := render()
	second := render()
	assert.Equal(t, first, second, "re-loading the descriptor must produce byte-identical output")
}

func TestEmit_ExtendTokens(t *testing.T) {
	css := Emit(nil, map[string]string{"radius": "0.5rem", "gap": "1rem"}, NewRegistry(), nil)

	assert.Contains(t, css, ":root {\n  --gap: 1rem;\n  --radius: 0.5rem;\n}")
}

func TestEmit_EmptyExtendOmitted(t *testing.T) {
	css := Emit(nil, map[string]string{}, NewRegistry(), nil)
	assert.Equal(t, emitHeader, css)
}

func TestEmit_Prune(t *testing.T) {
	reg := heroIconRegistry()
	reg.AddUtility("badge", Declarations{"display": "inline-flex"}, "plugins[2]")

	used := map[string]bool{"hero-icon": true}
	css := Emit(nil, nil, reg, used)

	assert.Contains(t, css, ".hero-icon {")
	assert.NotContains(t, css, ".badge {")

	// nil used set disables pruning entirely.
	unpruned := Emit(nil, nil, reg, nil)
	assert.Contains(t, unpruned, ".badge {")
}

func TestEmit_CascadeOrderPreserved(t *testing.T) {
	reg := NewRegistry()
	reg.AddUtility("badge", Declarations{"display": "inline-flex"}, "plugins[0]")
	reg.AddUtility("chip", Declarations{"display": "block"}, "plugins[0]")
	reg.AddUtility("badge", Declarations{"display": "grid"}, "plugins[1]")

	css := Emit(nil, nil, reg, nil)

	// The later registration wins and sits later in the cascade.
	chipIdx := strings.Index(css, ".chip {")
	badgeIdx := strings.Index(css, ".badge {")
	require.NotEqual(t, -1, chipIdx)
	require.NotEqual(t, -1, badgeIdx)
	assert.Less(t, chipIdx, badgeIdx)
	assert.Contains(t, css, "display: grid")
	assert.NotContains(t, css, "display: inline-flex")
}
