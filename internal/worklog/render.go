package worklog

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Fprint renders a report to w as pterm tables.
func Fprint(w io.Writer, rep Report) {
	if rep.Notice != "" {
		fmt.Fprintln(w, pterm.FgYellow.Sprint(rep.Notice))
		return
	}

	for i, sec := range rep.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if sec.Label != "" {
			fmt.Fprintln(w, pterm.Bold.Sprint(sec.Label))
		}
		if sec.Table.Title != "" {
			fmt.Fprintln(w, sec.Table.Title)
		}

		data := pterm.TableData{sec.Table.Headers}
		for _, row := range sec.Table.Rows {
			data = append(data, row)
		}

		rendered, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
		if err != nil {
			continue
		}
		fmt.Fprintln(w, rendered)
	}
}
