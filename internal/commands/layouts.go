package commands

import "github.com/spf13/cobra"

func newLayoutsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List known statement layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			printLayouts(cmd.OutOrStdout(), reg)
			return nil
		},
	}
}
