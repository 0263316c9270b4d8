package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"twosum/internal/app"
	"twosum/internal/verify"
)

// check --expect FILE: solve the cases and compare with expected outputs.
func checkCmd() *cobra.Command {
	var (
		expectPath string
		unordered  bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare solved output with an expected-outputs file",
		Long: "Solves the cases from stdin (or --input), renders them in the text format\n" +
			"and compares the trimmed result with --expect line by line. Exits non-zero\n" +
			"when the outputs differ. Use --unordered when the expected file lists the\n" +
			"lower index first.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, err := os.ReadFile(expectPath)
			if err != nil {
				return errors.Wrap(err, "reading expected outputs")
			}

			in, closeIn, err := openInput(cmd, cfg.Input)
			if err != nil {
				return err
			}
			defer closeIn()

			mode := verify.ModeExact
			if unordered {
				mode = verify.ModeUnordered
			}
			report, _, err := app.New(wired).Check(in, string(expected), mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Match() {
				_, err = fmt.Fprintln(out, "Outputs match!")
				return err
			}
			fmt.Fprintln(out, "Outputs do not match!")
			for _, m := range report.Mismatches {
				fmt.Fprintln(out, m)
			}
			return report.Err()
		},
	}
	cmd.Flags().StringVar(&expectPath, "expect", "", "expected outputs file, one line per found case")
	cmd.Flags().BoolVar(&unordered, "unordered", false, "ignore index order within a line")
	_ = cmd.MarkFlagRequired("expect")
	return cmd
}
