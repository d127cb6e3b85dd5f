package themegen

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks content scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// Patterns that carry class lists in markup. The capture group is the
	// full attribute value; tokens are split on whitespace afterwards.
	classAttrPatterns = []*regexp.Regexp{
		regexp.MustCompile(`class="([^"]+)"`),
		regexp.MustCompile(`class='([^']+)'`),
		regexp.MustCompile(`className="([^"]+)"`),
		regexp.MustCompile(`class=\{\s*"([^"]+)"`),
	}

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a matched file should be excluded from
// scanning. Gitignore rules only apply to relative paths: absolute paths
// (like /tmp/...) are outside the project and keep their matches.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ExpandContent expands the descriptor's content globs to actual file paths,
// deduplicating across patterns. Scanning is a union, so pattern order does
// not affect the result set.
func ExpandContent(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// ScanUsedClasses scans the given files and returns the set of class tokens
// referenced in their markup. Files that cannot be read are skipped; a
// missing content file is not fatal.
func ScanUsedClasses(files []string) map[string]bool {
	used := make(map[string]bool)

	for _, file := range files {
		scanFileClasses(file, used)
	}

	return used
}

// scanFileClasses extracts class tokens from a single file into used.
func scanFileClasses(path string, used map[string]bool) {
	// #nosec G304 - path comes from descriptor content globs
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		for _, pattern := range classAttrPatterns {
			for _, match := range pattern.FindAllStringSubmatch(line, -1) {
				if len(match) < 2 {
					continue
				}
				for _, token := range strings.Fields(match[1]) {
					used[token] = true
				}
			}
		}
	}
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
