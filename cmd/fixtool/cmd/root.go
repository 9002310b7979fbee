package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/fix"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fixtool",
	Short: "16.16 fixed-point calculator and table exporter",
	Long: `fixtool exposes the fix engine from the command line.

Angles are binary degrees: 256 is a full turn, 64 a right angle.

Commands:
  eval    - apply one operation to decimal arguments
  tables  - print or export the cos/tan/acos lookup tables`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			fix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
