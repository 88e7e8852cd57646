package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt2csv/internal/extract"
)

func newTextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text <statement.pdf>",
		Short: "Print the text the scanner sees, one fragment per line",
		Long: "Print the extracted text of a statement. Save it as a .txt file to\n" +
			"tune a layout and feed it back to convert.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := extract.ForPath(args[0])
			if err != nil {
				return err
			}
			text, err := ex.Extract(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
