// Package output renders a selection result for the CLI in table, json, or
// yaml form.
package output

import (
	"fmt"
	"io"

	"github.com/agentsel-dev/agentsel/internal/catalog"
	"github.com/agentsel-dev/agentsel/internal/resolve"
)

// Formatter renders a selection result to its writer.
type Formatter interface {
	Format(sel *resolve.Result) error
}

// NewFormatter creates a formatter for the named format.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, yaml)", format)
	}
}

// report is the serializable view of a selection result shared by the json
// and yaml formatters.
type report struct {
	Profiles []reportProfile `json:"profiles" yaml:"profiles"`
}

type reportProfile struct {
	ID          string   `json:"id" yaml:"id"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	Reasons     []string `json:"reasons" yaml:"reasons"`
}

func buildReport(sel *resolve.Result) report {
	r := report{Profiles: make([]reportProfile, 0, len(sel.Active))}
	for _, id := range sel.Active {
		r.Profiles = append(r.Profiles, reportProfile{
			ID:          id,
			DisplayName: catalog.DisplayName(id),
			Reasons:     sel.Reasons[id],
		})
	}
	return r
}
