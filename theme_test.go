package themegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveThemes_OverrideMerge(t *testing.T) {
	entries := []ThemeEntry{
		{
			Name: "light",
			Colors: map[string]string{
				"primary":   "#4f46e5",
				"secondary": "#0ea5e9",
				"accent":    "#f59e0b",
				"neutral":   "#1f2937",
				"base-100":  "#f9fafb",
			},
		},
		{Name: "dark"},
		{Name: "cupcake"},
		{Name: "cyberpunk"},
	}

	resolved, err := ResolveThemes(entries)
	require.NoError(t, err)
	require.Len(t, resolved, 4)

	// Literal order preserved, first entry is the default.
	assert.Equal(t, "light", resolved[0].Name)
	assert.Equal(t, "dark", resolved[1].Name)
	assert.Equal(t, "cupcake", resolved[2].Name)
	assert.Equal(t, "cyberpunk", resolved[3].Name)

	// Expected merged result: preset light with exactly the five keys replaced.
	want, ok := Preset("light")
	require.True(t, ok)
	want["primary"] = "#4f46e5"
	want["secondary"] = "#0ea5e9"
	want["accent"] = "#f59e0b"
	want["neutral"] = "#1f2937"
	want["base-100"] = "#f9fafb"

	if diff := cmp.Diff(want, resolved[0].Colors); diff != "" {
		t.Errorf("merged light theme mismatch (-want +got):\n%s", diff)
	}

	// Unlisted roles inherit from the preset unchanged.
	preset, _ := Preset("light")
	assert.Equal(t, preset["info"], resolved[0].Colors["info"])
	assert.Equal(t, preset["success"], resolved[0].Colors["success"])
	assert.Equal(t, preset["base-content"], resolved[0].Colors["base-content"])

	// Bare entries are the untouched presets.
	darkPreset, _ := Preset("dark")
	if diff := cmp.Diff(darkPreset, resolved[1].Colors); diff != "" {
		t.Errorf("dark preset mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveThemes_DoesNotMutatePresets(t *testing.T) {
	before, _ := Preset("light")

	_, err := ResolveThemes([]ThemeEntry{
		{Name: "light", Colors: map[string]string{"primary": "#000000"}},
	})
	require.NoError(t, err)

	after, _ := Preset("light")
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("preset table mutated by merge (-before +after):\n%s", diff)
	}
}

func TestResolveThemes_Idempotent(t *testing.T) {
	entries := []ThemeEntry{
		{Name: "light", Colors: map[string]string{"primary": "#570df8"}},
		{Name: "dark"},
	}

	first, err := ResolveThemes(entries)
	require.NoError(t, err)
	second, err := ResolveThemes(entries)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resolving twice differs (-first +second):\n%s", diff)
	}
}

func TestResolveThemes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []ThemeEntry
		wantErr string
	}{
		{
			name:    "unknown preset",
			entries: []ThemeEntry{{Name: "pastel"}},
			wantErr: "unknown theme preset",
		},
		{
			name:    "duplicate theme",
			entries: []ThemeEntry{{Name: "dark"}, {Name: "dark"}},
			wantErr: "listed more than once",
		},
		{
			name:    "override onto unknown preset",
			entries: []ThemeEntry{{Name: "solarized", Colors: map[string]string{"primary": "#fff"}}},
			wantErr: "unknown theme preset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveThemes(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#570df8", true},
		{"#fff", true},
		{"#FFEE00", true},
		{"#ffee00cc", true},
		{"570df8", false},
		{"#57", false},
		{"#57gd08", false},
		{"red", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidHexColor(tt.color), "ValidHexColor(%q)", tt.color)
		})
	}
}

func TestPreset_ReturnsCopies(t *testing.T) {
	first, ok := Preset("cupcake")
	require.True(t, ok)
	first["primary"] = "#mutated"

	second, _ := Preset("cupcake")
	assert.NotEqual(t, "#mutated", second["primary"])
}

func TestPreset_Unknown(t *testing.T) {
	_, ok := Preset("nord")
	assert.False(t, ok)
}
