package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nkiryanov/cookbook/internal/models"
)

// RenderTo writes the browser's current state as a plain text table:
// header row, one row per item, the empty state when nothing was
// found, and the footer controls.
func RenderTo[T models.TransferObject](w io.Writer, b *Browser[T]) error {
	columns := b.Columns()
	items := b.Items()
	footer := b.Footer()

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col.Label)
	}
	fmt.Fprintln(tw)

	if len(items) == 0 && !footer.Loading {
		fmt.Fprintf(tw, "No %s found.\n", strings.ToLower(b.cfg.Title))
	}
	for _, item := range items {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, col.Format(item))
		}
		fmt.Fprintln(tw)
	}

	switch {
	case footer.Loading:
		fmt.Fprintln(tw, "Loading...")
	case footer.CanLoadMore:
		fmt.Fprintln(tw, "[load more]")
	}
	if footer.CanCreate {
		fmt.Fprintln(tw, "[create]")
	}

	return tw.Flush()
}
