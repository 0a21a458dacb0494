package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sgr/internal/version"
	"github.com/arthur-debert/sgr/pkg/logging"
)

var (
	verbosity int
	noColor   bool

	rootCmd = &cobra.Command{
		Use:   "sgr",
		Short: "Style terminal output with minimal ANSI escapes",
		Long: `sgr styles terminal text with ANSI SGR escape sequences, emitting only
the minimal escapes needed for each style transition. Styles come from a
built-in theme or a TOML theme file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(swatchCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sgr %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
	},
}
