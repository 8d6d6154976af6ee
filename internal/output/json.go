package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// JSONResult represents one replayed script in JSON format.
type JSONResult struct {
	Script   string   `json:"script"`
	GameID   string   `json:"gameId,omitempty"`
	History  []string `json:"history"`
	Status   string   `json:"status"`
	Text     string   `json:"statusText"`
	Colour   string   `json:"colour,omitempty"`
	Moves    int      `json:"moves"`
	Rejected int      `json:"rejected"`
	Error    string   `json:"error,omitempty"`
}

// JSONOutput holds every script for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result to its JSON form.
func ResultToJSON(res worker.ProcessResult, cfg *config.Config) *JSONResult {
	jr := &JSONResult{
		Script:   res.Name,
		History:  append([]string{}, res.History...),
		Status:   res.Status.Kind.String(),
		Text:     res.StatusText,
		Moves:    res.Moves,
		Rejected: res.Rejected,
	}
	if cfg.Output.ShowGameID {
		jr.GameID = res.GameID.String()
	}
	if res.Status.Kind == game.Check || res.Status.Kind == game.Checkmate {
		jr.Colour = res.Status.Colour.String()
	}
	if res.Error != nil {
		jr.Error = res.Error.Error()
	}
	return jr
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []*JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*JSONResult, 0),
	}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(res worker.ProcessResult) error {
	if jw.cfg.Verbosity == 0 && res.Error == nil {
		return nil
	}
	jw.results = append(jw.results, ResultToJSON(res, jw.cfg))
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
