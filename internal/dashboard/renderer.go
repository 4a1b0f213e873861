package dashboard

import (
	"encoding/json"
	"io"

	"github.com/vilaca/portfolio-stats/internal/domain"
)

// Renderer handles rendering responses to HTTP clients.
type Renderer interface {
	RenderHealth(w io.Writer) error
	RenderStatsJSON(w io.Writer, agg domain.Aggregate) error
}

// JSONRenderer implements Renderer for the JSON API.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

func (r *JSONRenderer) RenderStatsJSON(w io.Writer, agg domain.Aggregate) error {
	return json.NewEncoder(w).Encode(agg)
}
