package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt2csv/internal/buildinfo"
	"github.com/cleared-dev/stmt2csv/internal/config"
)

// rootOptions carries the persistent flags and the shared logger.
type rootOptions struct {
	configPath string
	verbose    bool
	log        *logrus.Logger
}

// loadConfig falls back to defaults only when --config was left unset.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(o.configPath)
	}
	return config.LoadOrDefault(o.configPath)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{log: logrus.New()}
	opts.log.SetOutput(os.Stderr)

	rootCmd := &cobra.Command{
		Use:     "stmt2csv",
		Short:   "Convert PDF bank statements to CSV",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log.SetLevel(logrus.WarnLevel)
			if opts.verbose {
				opts.log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log debug output to stderr")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConvertCommand(opts))
	rootCmd.AddCommand(newTextCommand())
	rootCmd.AddCommand(newLayoutsCommand(opts))

	return rootCmd
}
