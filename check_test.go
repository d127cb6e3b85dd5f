package themegen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkOffline runs Check without touching the filesystem for glob matching.
func checkOffline(t *testing.T, desc *Descriptor) *CheckResult {
	t.Helper()
	result, err := Check(desc, CheckConfig{SkipGlobMatch: true})
	require.NoError(t, err)
	return result
}

func issueTexts(result *CheckResult) []string {
	var texts []string
	for _, issue := range result.Issues {
		texts = append(texts, issue.Text)
	}
	return texts
}

func TestCheck_ValidDescriptor(t *testing.T) {
	desc := &Descriptor{
		Content: []string{"web/**/*.html"},
		Plugins: []PluginSpec{
			{Name: "themes"},
			{Utilities: map[string]Declarations{
				"hero-icon": {"display": "inline-block"},
			}},
		},
		Themes: []ThemeEntry{
			{Name: "light", Colors: map[string]string{"primary": "#570df8"}},
			{Name: "dark"},
			{Name: "cupcake"},
			{Name: "cyberpunk"},
		},
	}

	result := checkOffline(t, desc)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 4, result.ThemesDeclared)
	assert.Equal(t, 2, result.PluginsDeclared)
	assert.Equal(t, 1, result.UtilitiesRegistered)
}

func TestCheck_ContentIssues(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		severity string
		wantText string
	}{
		{
			name:     "empty pattern",
			pattern:  "",
			severity: SeverityError,
			wantText: "is empty",
		},
		{
			name:     "absolute path",
			pattern:  "/var/www/**/*.html",
			severity: SeverityError,
			wantText: "must be a relative path",
		},
		{
			name:     "malformed glob",
			pattern:  "web/[unclosed",
			severity: SeverityError,
			wantText: "not a valid glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := &Descriptor{
				Content: []string{tt.pattern},
				Themes:  []ThemeEntry{{Name: "light"}},
			}
			result := checkOffline(t, desc)

			require.Len(t, result.Issues, 1)
			assert.Equal(t, tt.severity, result.Issues[0].Severity)
			assert.Contains(t, result.Issues[0].Text, tt.wantText)
			assert.Equal(t, "content[0]", result.Issues[0].Pos.Field)
		})
	}
}

func TestCheck_ZeroMatchGlobIsWarning(t *testing.T) {
	desc := &Descriptor{
		Content: []string{"testdata/nonexistent/**/*.html"},
		Themes:  []ThemeEntry{{Name: "light"}},
	}

	result, err := Check(desc, CheckConfig{})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "matches no files")
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
}

func TestCheck_ThemeIssues(t *testing.T) {
	desc := &Descriptor{
		Themes: []ThemeEntry{
			{Name: "light", Colors: map[string]string{"primary": "blurple"}},
			{Name: "light"},
			{Name: "pastel"},
		},
	}

	result := checkOffline(t, desc)
	texts := issueTexts(result)

	assert.Contains(t, texts, `color "blurple" for role "primary" is not a hex literal`)
	assert.Contains(t, texts, `theme "light" listed more than once`)
	assert.Contains(t, texts, `unknown theme preset "pastel"`)
	assert.Equal(t, 3, result.ErrorCount)
}

func TestCheck_NoThemesWarning(t *testing.T) {
	result := checkOffline(t, &Descriptor{})
	texts := issueTexts(result)
	assert.Contains(t, texts, IssueNoThemes)
	assert.Equal(t, 1, result.WarningCount)
}

func TestCheck_ExtendHexValidated(t *testing.T) {
	desc := &Descriptor{
		Theme:  ThemeSection{Extend: map[string]string{"brand": "#57", "radius": "0.5rem"}},
		Themes: []ThemeEntry{{Name: "light"}},
	}

	result := checkOffline(t, desc)

	// Only the truncated hex literal is flagged; free-form tokens pass.
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "theme.extend.brand", result.Issues[0].Pos.Field)
}

func TestCheck_PluginIssues(t *testing.T) {
	desc := &Descriptor{
		Plugins: []PluginSpec{
			{Name: "daisyworld"},
			{Utilities: map[string]Declarations{"badge": {"display": "flex"}}},
			{Utilities: map[string]Declarations{"badge": {"display": "grid"}}},
		},
		Themes: []ThemeEntry{{Name: "light"}},
	}

	result := checkOffline(t, desc)

	texts := issueTexts(result)
	assert.Contains(t, texts, `unknown plugin "daisyworld"`)
	assert.Equal(t, 1, result.ErrorCount)

	// The collision is a warning: the build survives it, last write wins.
	require.Equal(t, 1, result.WarningCount)
	var warning Issue
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			warning = issue
		}
	}
	assert.Contains(t, warning.Text, "overrides registration")
}

func TestCheck_IssueLimits(t *testing.T) {
	desc := &Descriptor{
		Content: []string{"", "", "", ""},
		Themes:  []ThemeEntry{{Name: "light"}},
	}

	result, err := Check(desc, CheckConfig{SkipGlobMatch: true, MaxIssues: 2})
	require.NoError(t, err)
	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 2, result.TruncatedCount)
}

func TestCheck_MaxSameIssues(t *testing.T) {
	desc := &Descriptor{
		Content: []string{"/a", "/b", "/c"},
		Themes:  []ThemeEntry{{Name: "light"}},
	}

	// Three distinct texts: MaxSameIssues caps repeats, not distinct issues.
	result, err := Check(desc, CheckConfig{SkipGlobMatch: true, MaxSameIssues: 1})
	require.NoError(t, err)
	assert.Len(t, result.Issues, 3)
	assert.Equal(t, 0, result.TruncatedCount)
}

func TestWriteOutput_JSON(t *testing.T) {
	desc := &Descriptor{
		Themes: []ThemeEntry{{Name: "pastel"}},
	}
	result := checkOffline(t, desc)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputJSON, CheckConfig{}))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Summary.TotalIssues)
	assert.Equal(t, 1, out.Summary.Errors)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "themecheck", out.Issues[0].Linter)
	assert.Equal(t, "themes[0]", out.Issues[0].Field)
}

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputIssues, DetermineOutputFormat("", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("issues", false))
	assert.Equal(t, OutputSummary, DetermineOutputFormat("summary", false))
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("bogus", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("json", true))
}
