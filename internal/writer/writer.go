// Package writer persists synthesized artifacts. It is the only place in
// the repository that writes artifact files: the synthesis core returns
// values and stays free of side effects.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/agentsel-dev/agentsel/internal/synth"
)

// Write persists each artifact under dir using its suggested name. Every
// artifact is written to a uniquely named temp file and renamed into place,
// so a reader never observes a partially written artifact.
func Write(dir string, artifacts []synth.Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, a := range artifacts {
		if err := writeAtomic(dir, a); err != nil {
			return err
		}
	}
	return nil
}

func writeAtomic(dir string, a synth.Artifact) error {
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", a.Name, uuid.NewString()))

	if err := os.WriteFile(tmp, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("writing artifact %s: %w", a.Name, err)
	}

	final := filepath.Join(dir, a.Name)
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp) // Best-effort cleanup
		return fmt.Errorf("finalizing artifact %s: %w", a.Name, err)
	}
	return nil
}
