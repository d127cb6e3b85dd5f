package themegen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Truncated   int `json:"truncated"`
}

// JSONStats contains descriptor statistics
type JSONStats struct {
	ThemesDeclared      int `json:"themes_declared"`
	PluginsDeclared     int `json:"plugins_declared"`
	UtilitiesRegistered int `json:"utilities_registered"`
	ContentFiles        int `json:"content_files"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Field    string `json:"field"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Value    string `json:"value,omitempty"` // Offending descriptor value
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		value := ""
		if len(issue.SourceLines) > 0 {
			value = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Field:    issue.Pos.Field,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Value:    value,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      result.ErrorCount,
			Warnings:    result.WarningCount,
			Truncated:   result.TruncatedCount,
		},
		Stats: JSONStats{
			ThemesDeclared:      result.ThemesDeclared,
			PluginsDeclared:     result.PluginsDeclared,
			UtilitiesRegistered: result.UtilitiesRegistered,
			ContentFiles:        result.FilesScanned,
		},
		Issues: jsonIssues,
	}
}
