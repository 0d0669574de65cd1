package workflow

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the workflow as indented JSON. Debugging/export aid only; the
// graph of record is whatever the voice service accepted.
func Save(w *Workflow, filename string) error {
	b, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("encode workflow: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("write workflow: %w", err)
	}
	return nil
}
