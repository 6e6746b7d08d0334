package main

import (
	"fmt"
	"io"

	"github.com/pagemark/pagemark/model"
)

const ansiReset = "\x1b[0m"

// display prints records grouped by page, with a colored swatch per record
// when colored output is enabled.
func display(w io.Writer, records []model.Record, colored bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No highlights or annotations found.")
		return
	}

	lastPage := 0
	for _, r := range records {
		if r.Page != lastPage {
			fmt.Fprintf(w, "\nPage %d\n", r.Page)
			fmt.Fprintln(w, "--------")
			lastPage = r.Page
		}

		tag := ""
		if note := r.MergeNote(); note != "" {
			tag = fmt.Sprintf(" (%s)", note)
		}

		fmt.Fprintf(w, "  %s [%s/%s]%s %s\n",
			swatch(r, colored), r.Color, r.Category, tag, r.Text)
	}

	fmt.Fprintf(w, "\n%d records\n", len(records))
}

// swatch returns a colored block for the record's classified color, or a
// plain marker when colored output is disabled or the color is unknown.
func swatch(r model.Record, colored bool) string {
	if !colored || !r.Color.Known() {
		return "*"
	}
	cr, cg, cb := r.Color.Prototype().RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  %s", cr, cg, cb, ansiReset)
}
