package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/themegen"
)

var errCheckFailed = errors.New("descriptor check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the descriptor",
	Long: `Validate the descriptor without emitting anything: content globs,
theme preset references, color literals and plugin registrations.
Errors fail the check; warnings only fail it under --strict.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit with code 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Int("max-issues", 0, "Maximum issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Maximum same issues to show (0=unlimited)")
	f.Bool("print-values", true, "Show offending descriptor values")
	f.Bool("print-linter-name", true, "Show (themecheck) suffix")
}

func runCheck(_ *cobra.Command, _ []string) error {
	config := buildCheckConfig()

	desc, err := themegen.LoadDescriptor(config.DescriptorPath)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	result, err := themegen.Check(desc, config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := themegen.DetermineOutputFormat(k.String("output-format"), quiet)

	if !quiet {
		if err := themegen.WriteOutput(os.Stdout, result, format, config); err != nil {
			return err
		}
	}

	// Soft gate: errors always fail, warnings only under --strict.
	if result.ErrorCount > 0 {
		return errCheckFailed
	}
	if config.Strict && result.WarningCount > 0 {
		return errCheckFailed
	}

	return nil
}
