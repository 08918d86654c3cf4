package output

import (
	"encoding/json"
	"io"

	"github.com/agentsel-dev/agentsel/internal/resolve"
)

// JSONFormatter renders a selection result as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes the selection as JSON.
func (f *JSONFormatter) Format(sel *resolve.Result) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildReport(sel))
}
