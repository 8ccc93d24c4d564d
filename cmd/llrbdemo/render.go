package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

func render(w io.Writer, res demoResult, dump bool) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Measure", "Value"})
	tbl.AppendRows([]table.Row{
		{"inserted", humanize.Comma(res.inserted)},
		{"insert failures", humanize.Comma(res.insertFailed)},
		{"height after build", res.height},
		{"search(1) found", res.found},
		{"deleted", humanize.Comma(res.deleted)},
		{"not found", humanize.Comma(res.notFound)},
		{"remaining", res.remaining},
		{"released", res.releasedClean},
	})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if !dump {
		return nil
	}

	for depth, level := range res.levels {
		parts := make([]string, len(level))
		for i, e := range level {
			parts[i] = fmt.Sprintf("[%d, %d]", e.Key, e.Value)
		}

		_, err = fmt.Fprintf(w, "%d: %s\n", depth, strings.Join(parts, " "))
		if err != nil {
			return fmt.Errorf("write level %d: %w", depth, err)
		}
	}

	return nil
}
