// Package output writes replay reports in various formats.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ReportWriter is the interface for writing replay results to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteResult writes the outcome of a single script.
	WriteResult(res worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for cfg.Output.Format.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.FormatJSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one human readable block per script.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes a script's move log and final status.
// At verbosity 0 only failed scripts are written.
func (tw *TextWriter) WriteResult(res worker.ProcessResult) error {
	if tw.cfg.Verbosity == 0 && res.Error == nil {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(res.Name)
	if tw.cfg.Output.ShowGameID {
		fmt.Fprintf(&sb, " [%s]", res.GameID)
	}
	sb.WriteString("\n")

	// History is already trimmed by the replay; Moves counts every ply.
	first := res.Moves - len(res.History)
	if first > 0 {
		fmt.Fprintf(&sb, "  ... %d earlier moves\n", first)
	}
	for i, record := range res.History {
		fmt.Fprintf(&sb, "  %3d. %s\n", first+i+1, record)
	}

	fmt.Fprintf(&sb, "  %s\n", res.StatusText)
	fmt.Fprintf(&sb, "  %d moves, %d rejected\n", res.Moves, res.Rejected)
	if res.Error != nil {
		fmt.Fprintf(&sb, "  error: %v\n", res.Error)
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
