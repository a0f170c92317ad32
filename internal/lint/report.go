package lint

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	fieldset "github.com/utopos/fieldset"
)

// Finding is one failed call-site validation.
type Finding struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	Marker       string `json:"marker"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	OffendingKey string `json:"offending_key,omitempty"`
}

// Report is the outcome of one lint run.
type Report struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Sites    int       `json:"sites"`
	Findings []Finding `json:"findings"`
}

// Clean reports whether the run produced no findings.
func (r *Report) Clean() bool { return len(r.Findings) == 0 }

func newFinding(site CallSite, err error) *Finding {
	f := &Finding{
		File:    site.File,
		Line:    site.Line,
		Column:  site.Column,
		Marker:  site.Marker,
		Message: err.Error(),
	}
	if ve, ok := fieldset.AsError(err); ok {
		f.Kind = ve.Kind
		f.Message = ve.Message
		f.OffendingKey = ve.OffendingKey
	}
	return f
}

// WriteJSON emits the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText emits one compiler-style line per finding plus a summary.
func (r *Report) WriteText(w io.Writer) error {
	for _, f := range r.Findings {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.File, f.Line, f.Column, f.Kind, f.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "checked %d call sites, %d invalid\n", r.Sites, len(r.Findings))
	return err
}
