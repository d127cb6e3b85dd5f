package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/themegen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the stylesheet from the descriptor",
	Long: `Resolve the descriptor's theme list over the built-in presets, apply
the plugin list in order, and emit a deterministic stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringP("output", "o", "assets/themegen.css", "Output stylesheet path (- for stdout)")
	f.Bool("prune", false, "Emit only utilities referenced by content files")
	f.Bool("check", false, "Run the checker before building")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config := buildBuildConfig()

	// Run check before building if --check flag set
	if check, _ := cmd.Flags().GetBool("check"); check {
		if err := runCheck(checkCmd, nil); err != nil {
			return err
		}
	}

	result, err := themegen.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if config.OutputPath == "-" {
		fmt.Fprint(os.Stdout, result.Stylesheet)
		return nil
	}

	if !quiet {
		fmt.Printf("Wrote %s\n", config.OutputPath)
		fmt.Printf("  Themes resolved: %d\n", result.ThemesResolved)
		fmt.Printf("  Utilities emitted: %d\n", result.UtilitiesEmitted)
		if config.Prune {
			fmt.Printf("  Content files scanned: %d\n", result.FilesScanned)
		}

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	return nil
}
