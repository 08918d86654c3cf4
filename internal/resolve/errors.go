package resolve

import (
	"fmt"
	"strings"
)

// UnknownValueError indicates the caller supplied a value outside a
// dimension's closed enumeration. Fatal and caller-correctable; no partial
// result is produced.
type UnknownValueError struct {
	Dimension string
	Value     string
	Allowed   []string
}

func (e *UnknownValueError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("unknown dimension %q (value %q)", e.Dimension, e.Value)
	}
	return fmt.Sprintf("unknown %s value %q (allowed: %s)",
		e.Dimension, e.Value, strings.Join(e.Allowed, ", "))
}

// ConfigConflictError indicates two non-override candidates of equal
// precedence contend for one mutex group. Fatal and caller-correctable.
type ConfigConflictError struct {
	Group      string
	Candidates []string
}

func (e *ConfigConflictError) Error() string {
	return fmt.Sprintf("conflicting profiles for mutex group %q: %s",
		e.Group, strings.Join(e.Candidates, ", "))
}
