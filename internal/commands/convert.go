package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt2csv/internal/convert"
	"github.com/cleared-dev/stmt2csv/internal/importer"
	"github.com/cleared-dev/stmt2csv/internal/statement"
)

type convertFlags struct {
	out    string
	outDir string
	layout string
	tz     string
	force  bool
}

func newConvertCommand(opts *rootOptions) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <statement.pdf|dir>",
		Short: "Convert a statement, or every statement in a directory, to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output CSV path (single file only)")
	cmd.Flags().StringVar(&flags.outDir, "out-dir", "", "directory for output CSVs (default from config)")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "statement layout name (default from config)")
	cmd.Flags().StringVar(&flags.tz, "tz", "", "timezone of statement times, e.g. Asia/Jakarta (default from config)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite existing CSV files")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *rootOptions, flags convertFlags, input string) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if flags.layout != "" {
		cfg.Layout = flags.layout
	}
	if flags.tz != "" {
		cfg.Timezone = flags.tz
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}

	layout, err := cfg.SelectedLayout()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	outDir, err := cfg.OutputDir()
	if err != nil {
		return err
	}

	inputs, err := resolveInputs(input)
	if err != nil {
		return err
	}
	if flags.out != "" && len(inputs) > 1 {
		return fmt.Errorf("--out needs a single input file, %s holds %d", input, len(inputs))
	}

	scanner := statement.NewScanner(layout, statement.WithLocation(loc))
	svc := convert.NewService(scanner, outDir, opts.log)
	dest := convert.FileDestination{Path: flags.out, Force: flags.force || cfg.Output.Force}

	w := cmd.OutOrStdout()
	failed := 0
	for i, path := range inputs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		resp := svc.Convert(path, dest)
		if !resp.Success {
			failed++
		}
		printResponse(w, resp)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(inputs))
	}
	return nil
}

// resolveInputs expands a directory into the statements it holds.
func resolveInputs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	files, err := importer.Scan(input)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no statements found in %s", input)
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, nil
}
