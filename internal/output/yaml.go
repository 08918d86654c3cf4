package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/agentsel-dev/agentsel/internal/resolve"
)

// YAMLFormatter renders a selection result as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the selection as YAML.
func (f *YAMLFormatter) Format(sel *resolve.Result) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))
	if err := encoder.Encode(buildReport(sel)); err != nil {
		return err
	}
	return encoder.Close()
}
