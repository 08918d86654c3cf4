package catalog

import "fmt"

// Error kinds reported by catalog loading.
const (
	KindUnreadableSource    = "unreadable-source"
	KindDuplicateID         = "duplicate-id"
	KindBadFrontMatter      = "bad-front-matter"
	KindIncompatibleCatalog = "incompatible-catalog"
)

// RegistryError indicates the catalog could not be loaded or indexed.
// These are fatal and non-retryable without fixing the catalog itself.
type RegistryError struct {
	Kind string // one of the Kind* constants
	ID   string // offending profile id, if known
	Path string // offending entry path, if known
	Err  error
}

func (e *RegistryError) Error() string {
	switch e.Kind {
	case KindDuplicateID:
		return fmt.Sprintf("catalog error (%s): entry %s normalizes to already-registered id %q", e.Kind, e.Path, e.ID)
	case KindBadFrontMatter:
		return fmt.Sprintf("catalog error (%s): entry %s: %v", e.Kind, e.Path, e.Err)
	case KindIncompatibleCatalog:
		return fmt.Sprintf("catalog error (%s): %v", e.Kind, e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("catalog error (%s): %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("catalog error (%s)", e.Kind)
	}
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}
