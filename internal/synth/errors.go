package synth

import "fmt"

// Synthesis error kinds.
const (
	KindMissingProfile = "missing-profile"
)

// SynthesisError indicates registry/selection drift: an active profile id
// that the catalog does not contain. This is a programming error in the
// caller's wiring, not user input, and is never skipped silently.
type SynthesisError struct {
	Kind string
	ID   string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis error (%s): profile %q is active but not in the catalog", e.Kind, e.ID)
}
