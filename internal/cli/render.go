package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/tightbinding/internal/config"
)

// renderTable writes rows in the configured output format.
func renderTable(w io.Writer, format string, header table.Row, rows []table.Row) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch format {
	case config.OutputMarkdown:
		t.RenderMarkdown()
	case config.OutputCSV:
		t.RenderCSV()
	case config.OutputTable, "":
		t.Render()
	default:
		return fmt.Errorf("output %q: %w", format, config.ErrInvalid)
	}
	return nil
}
