package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default themegen.yaml descriptor",
	Long:  `Create a themegen.yaml descriptor in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat("themegen.yaml"); err == nil && !force {
			return fmt.Errorf("themegen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile("themegen.yaml", []byte(defaultDescriptor), 0644); err != nil {
			return fmt.Errorf("writing descriptor: %w", err)
		}

		fmt.Println("Created themegen.yaml")
		return nil
	},
}

const defaultDescriptor = `# themegen build configuration descriptor
# Docs: https://github.com/yacobolo/themegen

# Markup files scanned for utility class usage (union of all patterns)
content:
  - "web/**/*.html"
  - "web/**/*.templ"
  - "internal/web/**/*.go"

# Design-token extensions, emitted as custom properties on :root
theme:
  extend: {}

# Plugins are applied in listed order; later registrations win on
# selector collisions.
plugins:
  - themes
  - utilities:
      hero-icon:
        display: inline-block
        width: 1.25rem
        height: 1.25rem
        flex-shrink: "0"

# Theme list: first entry is the default. A bare name references a
# built-in preset; a record layers color overrides onto the preset of
# the same name, all other roles inherit unchanged.
themes:
  - name: light
    colors:
      primary: "#4f46e5"
      secondary: "#0ea5e9"
      accent: "#f59e0b"
      neutral: "#1f2937"
      base-100: "#f9fafb"
  - dark
  - cupcake
  - cyberpunk

# Tool settings (flags > THEMEGEN_* env > this file)
build:
  output: assets/themegen.css
  prune: false

check:
  strict: false
  max-issues: 0        # 0 = unlimited
  max-same-issues: 0   # 0 = unlimited
  print-values: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing descriptor")
}
