// Package report computes the aggregates of the operational report and
// renders them as fixed-width text.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteReport joins lines with newlines and writes the result to path,
// creating parent directories as needed. No trailing newline is added.
func WriteReport(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
