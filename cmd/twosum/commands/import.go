package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"twosum/internal/input"
	"twosum/internal/store"
)

// import: turn problem-statement examples into a case file and an
// expected-outputs file.
func importCmd() *cobra.Command {
	var (
		casesPath  string
		expectPath string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert \"nums = [...], target = N\" examples into case and expected-output files",
		Long: "Reads examples such as\n\n" +
			"  Input: nums = [2,7,11,15], target = 9\n" +
			"  Output: [0,1]\n\n" +
			"from stdin (or --input) and writes the case file read by twosum and the\n" +
			"expected outputs read by twosum check.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, cfg.Input)
			if err != nil {
				return err
			}
			defer closeIn()

			examples, err := input.ParseExamples(in)
			if err != nil {
				return err
			}
			if err := store.SaveText(casesPath, input.FormatCases(input.Cases(examples))); err != nil {
				return errors.Wrap(err, "saving cases")
			}
			if err := store.SaveText(expectPath, input.FormatExpected(examples)); err != nil {
				return errors.Wrap(err, "saving expected outputs")
			}
			wired.Logger.Debug("imported examples", "examples", len(examples))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cases to %s and expected outputs to %s\n",
				len(examples), casesPath, expectPath)
			return err
		},
	}
	cmd.Flags().StringVar(&casesPath, "cases", "test_cases.txt", "case file to write")
	cmd.Flags().StringVar(&expectPath, "expect", "expected_outputs.txt", "expected outputs file to write")
	return cmd
}
