// Package artifact writes verification run artifacts: the machine-readable
// run report and a human-readable markdown summary.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/entrhq/pagecheck/pkg/check"
)

// Writer handles writing run artifacts to the output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates an artifact writer for the given directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// EnsureDir creates the output directory. Screenshot paths under the
// output directory are valid only after this succeeds.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// ResolveScreenshot returns the screenshot path for a check: absolute and
// explicitly relative paths are kept as configured, bare names land in the
// output directory. Parent directories are created so the browser can
// write the PNG directly.
func (w *Writer) ResolveScreenshot(configured string) (string, error) {
	path := configured
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, ".") && !strings.ContainsRune(path, os.PathSeparator) {
		path = filepath.Join(w.outputDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	return path, nil
}

// WriteAll writes every artifact format for the run.
func (w *Writer) WriteAll(summary *check.Summary) error {
	if err := w.EnsureDir(); err != nil {
		return err
	}

	if err := w.WriteRunJSON(summary); err != nil {
		return fmt.Errorf("failed to write run JSON: %w", err)
	}

	if err := w.WriteSummaryMarkdown(summary); err != nil {
		return fmt.Errorf("failed to write summary markdown: %w", err)
	}

	return nil
}

// WriteRunJSON writes the full run summary as JSON.
func (w *Writer) WriteRunJSON(summary *check.Summary) error {
	path := filepath.Join(w.outputDir, "run.json")

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write run JSON: %w", writeErr)
	}

	return nil
}

// WriteSummaryMarkdown writes a human-readable markdown summary.
func (w *Writer) WriteSummaryMarkdown(summary *check.Summary) error {
	path := filepath.Join(w.outputDir, "summary.md")

	var md strings.Builder

	md.WriteString("# Pagecheck Run Summary\n\n")
	md.WriteString(fmt.Sprintf("**Run ID:** %s\n\n", summary.RunID))
	md.WriteString(fmt.Sprintf("**Started:** %s\n\n", summary.StartedAt.Format(time.RFC3339)))
	md.WriteString(fmt.Sprintf("**Completed:** %s\n\n", summary.FinishedAt.Format(time.RFC3339)))
	md.WriteString(fmt.Sprintf("**Checks:** %d passed, %d failed, %d errored\n\n",
		summary.Passed, summary.Failed, summary.Errored))

	md.WriteString("## Checks\n\n")
	for _, r := range summary.Results {
		status := "✅"
		if r.Status != check.StatusPassed {
			status = "❌"
		}
		md.WriteString(fmt.Sprintf("%s **%s** — %s", status, r.Name, r.URL))
		if r.Required {
			md.WriteString(" (required)")
		}
		if r.FallbackUsed {
			md.WriteString(" (via fallback)")
		}
		md.WriteString("\n")
		if r.Screenshot != "" {
			md.WriteString(fmt.Sprintf("   Screenshot: `%s`\n", r.Screenshot))
		}
		if r.Error != "" {
			md.WriteString(fmt.Sprintf("   Error: %s\n", r.Error))
		}
		if r.Diagnostics != "" {
			md.WriteString("   Rendered elements:\n```\n")
			md.WriteString(r.Diagnostics)
			md.WriteString("```\n")
		}
	}
	md.WriteString("\n")

	if writeErr := os.WriteFile(path, []byte(md.String()), 0600); writeErr != nil {
		return fmt.Errorf("failed to write summary markdown: %w", writeErr)
	}

	return nil
}
