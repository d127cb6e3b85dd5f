package themegen

import (
	"fmt"
	"os"
)

// Config holds build configuration
type Config struct {
	DescriptorPath string // themegen.yaml
	OutputPath     string // where the stylesheet is written ("-" = stdout)
	Prune          bool   // drop utilities not referenced by content files
	Verbose        bool   // enable progress logging
}

// BuildResult contains build stats
type BuildResult struct {
	ThemesResolved   int
	UtilitiesEmitted int
	FilesScanned     int
	Stylesheet       string // the emitted CSS
	Warnings         []string
}

// Build is the main entry point: load the descriptor, resolve themes, apply
// plugins, optionally prune against the content scan, and emit the
// stylesheet.
func Build(config Config) (*BuildResult, error) {
	result := &BuildResult{}

	// 1. Load the descriptor
	desc, err := LoadDescriptor(config.DescriptorPath)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the theme list
	themes, err := ResolveThemes(desc.Themes)
	if err != nil {
		return nil, fmt.Errorf("resolving themes: %w", err)
	}
	result.ThemesResolved = len(themes)

	if config.Verbose {
		fmt.Printf("Resolved %d themes\n", len(themes))
	}

	// 3. Apply plugins in listed order
	reg, err := ApplyPlugins(desc.Plugins)
	if err != nil {
		return nil, fmt.Errorf("applying plugins: %w", err)
	}
	for _, c := range reg.Collisions() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("selector .%s from %s overrides %s", c.Selector, c.Second, c.First))
	}

	// 4. Scan content for used classes when pruning
	var used map[string]bool
	if config.Prune {
		files, stats, err := ExpandContent(desc.Content)
		if err != nil {
			return nil, fmt.Errorf("expanding content globs: %w", err)
		}
		result.FilesScanned = stats.FilesScanned

		if config.Verbose {
			fmt.Printf("Scanned %d content files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
		}

		used = ScanUsedClasses(files)
	}

	// 5. Emit the stylesheet
	result.Stylesheet = Emit(themes, desc.Theme.Extend, reg, used)

	for _, u := range reg.Utilities() {
		if used == nil || used[u.Selector] {
			result.UtilitiesEmitted++
		}
	}

	// 6. Write it out
	if config.OutputPath != "" && config.OutputPath != "-" {
		if err := os.WriteFile(config.OutputPath, []byte(result.Stylesheet), 0o644); err != nil {
			return nil, fmt.Errorf("writing stylesheet: %w", err)
		}
	}

	return result, nil
}
