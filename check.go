package themegen

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

const linterName = "themecheck"

// CheckConfig holds checker configuration
type CheckConfig struct {
	DescriptorPath string // For issue positions (default "themegen.yaml")
	Strict         bool   // Treat warnings as build failures
	SkipGlobMatch  bool   // Skip the zero-match glob check (no filesystem access)

	// Output configuration
	MaxIssues        int  // 0 = unlimited (default)
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show offending values with issues (default: true)
	PrintLinterName  bool // Show (themecheck) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// CheckResult contains descriptor analysis results
type CheckResult struct {
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
	FilesScanned   int // Content files discovered during the glob check

	ThemesDeclared      int
	PluginsDeclared     int
	UtilitiesRegistered int
}

// Check validates a loaded descriptor and reports issues. Malformed values
// are errors; conditions the build survives (zero-match globs, selector
// collisions) are warnings, matching the soft-gate behavior of the build
// tool this descriptor format comes from.
func Check(desc *Descriptor, config CheckConfig) (*CheckResult, error) {
	if config.DescriptorPath == "" {
		config.DescriptorPath = "themegen.yaml"
	}

	result := &CheckResult{
		ThemesDeclared:  len(desc.Themes),
		PluginsDeclared: len(desc.Plugins),
	}

	checkContent(desc, config, result)
	checkThemes(desc, config, result)
	checkPlugins(desc, config, result)

	// Apply output limits before counting severities
	result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// checkContent validates the content glob set.
func checkContent(desc *Descriptor, config CheckConfig, result *CheckResult) {
	for i, pattern := range desc.Content {
		field := fmt.Sprintf("content[%d]", i)

		if pattern == "" {
			result.addIssue(config, SeverityError, field, pattern,
				fmt.Sprintf(IssueEmptyContent, i))
			continue
		}
		if filepath.IsAbs(pattern) {
			result.addIssue(config, SeverityError, field, pattern,
				fmt.Sprintf(IssueAbsoluteContent, pattern))
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			result.addIssue(config, SeverityError, field, pattern,
				fmt.Sprintf(IssueMalformedGlob, pattern))
			continue
		}

		if config.SkipGlobMatch {
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			result.addIssue(config, SeverityError, field, pattern,
				fmt.Sprintf(IssueMalformedGlob, pattern))
			continue
		}
		if len(matches) == 0 {
			// Not fatal: the consuming build just scans nothing.
			result.addIssue(config, SeverityWarning, field, pattern,
				fmt.Sprintf(IssueZeroMatchGlob, pattern))
		}
		result.FilesScanned += len(matches)
	}
}

// checkThemes validates the theme list: known presets, unique names, valid
// override color literals.
func checkThemes(desc *Descriptor, config CheckConfig, result *CheckResult) {
	if len(desc.Themes) == 0 {
		result.addIssue(config, SeverityWarning, "themes", "", IssueNoThemes)
		return
	}

	seen := make(map[string]bool, len(desc.Themes))
	for i, entry := range desc.Themes {
		field := fmt.Sprintf("themes[%d]", i)

		if seen[entry.Name] {
			result.addIssue(config, SeverityError, field, entry.Name,
				fmt.Sprintf(IssueDuplicateTheme, entry.Name))
		}
		seen[entry.Name] = true

		if _, ok := Preset(entry.Name); !ok {
			result.addIssue(config, SeverityError, field, entry.Name,
				fmt.Sprintf(IssueUnknownPreset, entry.Name))
		}

		for role, val := range entry.Colors {
			if !ValidHexColor(val) {
				result.addIssue(config, SeverityError,
					fmt.Sprintf("%s.colors.%s", field, role), val,
					fmt.Sprintf(IssueInvalidColor, val, role))
			}
		}
	}

	for role, val := range desc.Theme.Extend {
		// Extend tokens are free-form values, but hex-looking ones are
		// still checked for truncated literals.
		if len(val) > 0 && val[0] == '#' && !ValidHexColor(val) {
			result.addIssue(config, SeverityError,
				fmt.Sprintf("theme.extend.%s", role), val,
				fmt.Sprintf(IssueInvalidColor, val, role))
		}
	}
}

// checkPlugins validates plugin references and reports selector collisions.
func checkPlugins(desc *Descriptor, config CheckConfig, result *CheckResult) {
	for i, spec := range desc.Plugins {
		if spec.Kind() == "builtin" && !KnownBuiltin(spec.Name) {
			result.addIssue(config, SeverityError,
				fmt.Sprintf("plugins[%d]", i), spec.Name,
				fmt.Sprintf(IssueUnknownPlugin, spec.Name))
		}
	}

	// Dry-run the registry to surface cross-plugin collisions. Unknown
	// builtins were already reported above, so registration errors for
	// them are ignored here; css plugin read failures still surface.
	reg, err := ApplyPlugins(validPlugins(desc.Plugins))
	if err != nil {
		result.addIssue(config, SeverityError, "plugins", "", err.Error())
		return
	}
	result.UtilitiesRegistered = reg.Len()

	for _, c := range reg.Collisions() {
		result.addIssue(config, SeverityWarning,
			"plugins", c.Selector,
			fmt.Sprintf(IssueSelectorOverride, c.Selector, c.Second, c.First))
	}
}

// validPlugins filters out unknown builtin references so the dry-run
// registry can proceed past them.
func validPlugins(specs []PluginSpec) []PluginSpec {
	valid := make([]PluginSpec, 0, len(specs))
	for _, spec := range specs {
		if spec.Kind() == "builtin" && !KnownBuiltin(spec.Name) {
			continue
		}
		valid = append(valid, spec)
	}
	return valid
}

// addIssue appends an issue with the descriptor path position.
func (r *CheckResult) addIssue(config CheckConfig, severity, field, value, text string) {
	issue := Issue{
		FromLinter: linterName,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: config.DescriptorPath,
			Field:    field,
		},
	}
	if value != "" {
		issue.SourceLines = []string{value}
	}
	r.Issues = append(r.Issues, issue)
}

// limitIssues applies MaxIssues and MaxSameIssues caps, returning the kept
// issues and the number truncated.
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	kept := issues
	truncated := 0

	if config.MaxSameIssues > 0 {
		kept, truncated = deduplicateSameIssues(kept, config.MaxSameIssues)
	}

	if config.MaxIssues > 0 && len(kept) > config.MaxIssues {
		truncated += len(kept) - config.MaxIssues
		kept = kept[:config.MaxIssues]
	}

	return kept, truncated
}

// deduplicateSameIssues caps repeats of the same issue text.
func deduplicateSameIssues(issues []Issue, maxSame int) ([]Issue, int) {
	counts := make(map[string]int)
	kept := make([]Issue, 0, len(issues))
	truncated := 0

	for _, issue := range issues {
		counts[issue.Text]++
		if counts[issue.Text] > maxSame {
			truncated++
			continue
		}
		kept = append(kept, issue)
	}

	return kept, truncated
}
