package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"twosum/internal/input"
	"twosum/internal/solver"
)

// search <key>: sort one line of integers and binary-search it for key.
func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <key>",
		Short: "Print the sorted position and original index of key in a sequence",
		Long: "Reads one line of whitespace-separated integers, sorts it by value and\n" +
			"prints \"<position> <original-index>\" for key, or -1 when key is absent.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Newf("key %q is not an integer", args[0])
			}

			in, closeIn, err := openInput(cmd, cfg.Input)
			if err != nil {
				return err
			}
			defer closeIn()

			nums, err := input.ReadSequence(in)
			if err != nil {
				return errors.Wrap(err, "reading sequence")
			}

			sorted := solver.Sorted(nums)
			pos, ok := wired.Solver.Search(sorted, key)
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), -1)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", pos, sorted[pos].Index)
			return err
		},
	}
}
