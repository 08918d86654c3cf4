// Package synth renders the derived artifacts (rules, context, prompts)
// from a selection result and the catalog. Given the same inputs, every
// artifact is byte-identical on every call: no timestamps, no
// nondeterministic ordering, no locale-dependent formatting.
package synth

import "strings"

// maxSummaryLen is the summary truncation boundary, counted in runes.
const maxSummaryLen = 180

// summaryState drives the line scan: skip blank lines, skip heading lines,
// capture the first remaining line. Keeping the scan as one explicit state
// machine keeps the truncation rule in a single tested place.
type summaryState int

const (
	stateSkipBlank summaryState = iota
	stateSkipHeading
	stateCapture
)

// ExtractSummary returns the canonical one-line summary of a profile body:
// the first line that is neither blank nor a heading, truncated to 180
// runes with the last three replaced by "..." when longer. ok is false when
// no qualifying line exists.
func ExtractSummary(text string) (summary string, ok bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		state := stateCapture
		switch {
		case trimmed == "":
			state = stateSkipBlank
		case strings.HasPrefix(trimmed, "#"):
			state = stateSkipHeading
		}

		if state != stateCapture {
			continue
		}
		return truncate(trimmed), true
	}
	return "", false
}

// truncate enforces the summary length rule: content longer than the
// boundary keeps its first 177 runes followed by "...".
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryLen {
		return s
	}
	return string(runes[:maxSummaryLen-3]) + "..."
}
