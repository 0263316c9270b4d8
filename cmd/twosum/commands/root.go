package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"twosum/internal/app"
)

var (
	configPath string
	inputPath  string
	outPath    string
	format     string
	trace      bool

	cfg   app.Config
	wired *app.Wire
)

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "twosum",
		Short:        "Find two indices whose values sum to a target",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), &loaded)

			w, err := app.NewWire(loaded, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, wired = loaded, w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, cfg.Input)
			if err != nil {
				return err
			}
			defer closeIn()

			_, err = app.New(wired).Run(in, cmd.OutOrStdout())
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "read input from file instead of stdin")
	root.PersistentFlags().BoolVar(&trace, "trace", false, "log cursor positions to stderr")
	root.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	root.Flags().StringVar(&outPath, "out", "", "also save JSON results to this file")

	root.AddCommand(searchCmd(), checkCmd(), importCmd())
	return root
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(fs *pflag.FlagSet, c *app.Config) {
	if fs.Changed("input") {
		c.Input = inputPath
	}
	if fs.Changed("trace") {
		c.Trace = trace
	}
	if fs.Changed("format") {
		c.Format = format
	}
	if fs.Changed("out") {
		c.Out = outPath
	}
}

// openInput returns path opened for reading, or the command's stdin when path
// is empty.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}
	return f, func() { _ = f.Close() }, nil
}
