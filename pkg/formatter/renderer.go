package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/younsl/jaws/internal/config"
	"github.com/younsl/jaws/internal/models"
)

// Meta describes the run a report belongs to
type Meta struct {
	Program   string
	Version   string
	Region    string
	Generated time.Time
	User      string // user@host
}

// ReservationReport is everything the res command prints
type ReservationReport struct {
	Title string
	Cost  models.CostReport

	// Coverage is set when unused reservations were requested
	Coverage *Coverage
}

// Coverage holds the instance sub-reports of a matching run
type Coverage struct {
	Covered   []models.InstanceDetail
	Uncovered []models.InstanceDetail
}

// Renderer prints reports in one output format
type Renderer interface {
	RenderReservations(report ReservationReport) error
	RenderInstances(details []models.InstanceDetail, wide bool) error
	RenderIdentity(identity models.CallerIdentity) error
}

// New returns the Renderer for output, writing to w
func New(output string, w io.Writer, meta Meta) (Renderer, error) {
	switch output {
	case config.OutputTable:
		return &tableRenderer{w: w, meta: meta}, nil
	case config.OutputJSON:
		return &structuredRenderer{w: w, meta: meta, encode: encodeJSON}, nil
	case config.OutputYAML:
		return &structuredRenderer{w: w, meta: meta, encode: encodeYAML}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", output)
	}
}
