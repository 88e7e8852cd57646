package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cleared-dev/stmt2csv/internal/convert"
	"github.com/cleared-dev/stmt2csv/internal/importer"
)

const errorWidth = 100

// printResponse reports one conversion: where it went, the totals and
// every window that could not be parsed.
func printResponse(w io.Writer, resp convert.Response) {
	if resp.Success {
		fmt.Fprintf(w, "%s -> %s\n", resp.Input, resp.SavePath)
		printSummary(w, resp)
	} else {
		fmt.Fprintf(w, "%s: error: %s\n", resp.Input, resp.Error)
	}

	if len(resp.Errors) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d parsing errors:\n", len(resp.Errors))
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: errorWidth},
	})
	for i, msg := range resp.Errors {
		t.AppendRow(table.Row{i + 1, msg})
	}
	t.Render()
}

func printSummary(w io.Writer, resp convert.Response) {
	s := resp.Summary
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Transactions", "Incoming", "Outgoing", "Net", "Unparsed amounts"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.AppendRow(table.Row{s.Count, s.Incoming.String(), s.Outgoing.String(), s.Net().String(), s.Skipped})
	t.Render()
}

func printLayouts(w io.Writer, reg *importer.Registry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Start marker", "Banned words", "Delimiter", "Window"})
	for _, name := range reg.Names() {
		l, _ := reg.Get(name)
		t.AppendRow(table.Row{name, l.StartMarker(), len(l.BannedWords()), l.Delimiter, l.WindowSize})
	}
	t.Render()
}
