package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bundlekit/stylerules/pkg/logging"
)

var (
	verbosity  int
	configPath string
)

// NewRootCmd assembles the CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stylerules",
		Short: "Stylesheet routing policy for module bundlers",
		Long: `stylerules decides which processing path every stylesheet source file
takes during bundling: compiled globally, compiled as a scoped module,
treated as a static asset, ignored, or rejected with a diagnostic naming
the violated policy.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default searches .stylerules.toml / stylerules.toml in the working directory)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
