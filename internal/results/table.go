package results

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// RenderSummary prints the `columns` of every record plus the count of the
// remaining fields under `restTitle`.
func RenderSummary(out io.Writer, records []Record, columns []string, restTitle string) {
	t := NewTable(out)

	header := table.Row{}
	for _, c := range columns {
		header = append(header, c)
	}
	header = append(header, restTitle)
	t.AppendHeader(header)

	for _, rec := range records {
		row := table.Row{}
		present := 0
		for _, c := range columns {
			value, ok := rec.Get(c)
			if ok {
				present++
			}
			row = append(row, value)
		}
		row = append(row, strconv.Itoa(rec.Len()-present))
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"total", strconv.Itoa(len(records))})

	t.Render()
}
