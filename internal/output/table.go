package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentsel-dev/agentsel/internal/catalog"
	"github.com/agentsel-dev/agentsel/internal/resolve"
)

// TableFormatter renders a selection result as a human-readable table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the selection as a table.
func (f *TableFormatter) Format(sel *resolve.Result) error {
	if len(sel.Active) == 0 {
		_, err := fmt.Fprintln(f.writer, "No profiles selected.")
		return err
	}

	fmt.Fprintf(f.writer, "Active profiles (%d):\n", len(sel.Active))
	fmt.Fprintln(f.writer, strings.Repeat("─", 72))

	for _, id := range sel.Active {
		fmt.Fprintf(f.writer, "%-24s %s\n", id, catalog.DisplayName(id))
		for _, reason := range sel.Reasons[id] {
			fmt.Fprintf(f.writer, "  · %s\n", reason)
		}
	}

	_, err := fmt.Fprintln(f.writer, strings.Repeat("─", 72))
	return err
}
