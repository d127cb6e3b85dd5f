package themegen

// Issue represents a single descriptor violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "themecheck"
	Text        string   `json:"Text"`        // "unknown theme preset \"pastel\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Offending descriptor values for context
	Pos         IssuePos `json:"Pos"`         // Descriptor location
}

// IssuePos specifies the descriptor location of an issue. Line and Column
// are zero when the YAML position is not tracked; Field carries the dotted
// descriptor path instead.
type IssuePos struct {
	Filename string `json:"Filename"` // "themegen.yaml"
	Field    string `json:"Field"`    // "themes[0].colors.primary"
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats matching checker categories
const (
	IssueEmptyContent     = "content pattern %d is empty"
	IssueAbsoluteContent  = "content pattern %q must be a relative path"
	IssueMalformedGlob    = "content pattern %q is not a valid glob"
	IssueZeroMatchGlob    = "content pattern %q matches no files"
	IssueInvalidColor     = "color %q for role %q is not a hex literal"
	IssueUnknownPreset    = "unknown theme preset %q"
	IssueDuplicateTheme   = "theme %q listed more than once"
	IssueUnknownPlugin    = "unknown plugin %q"
	IssueSelectorOverride = "selector .%s from %s overrides registration from %s"
	IssueNoThemes         = "descriptor declares no themes"
)
