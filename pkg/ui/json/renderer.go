// Package json provides machine-readable JSON output, one object per line
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/syncinstall/pkg/plan"
)

// StepRecord is the JSON shape of one rendered step
type StepRecord struct {
	plan.Step
	Display string `json:"display"`
	DryRun  bool   `json:"dry_run"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	return &Renderer{encoder: json.NewEncoder(output)}
}

// RenderStep encodes the step with its display string
func (r *Renderer) RenderStep(step plan.Step, dryRun bool) error {
	return r.encoder.Encode(StepRecord{
		Step:    step,
		Display: step.Command.String(),
		DryRun:  dryRun,
	})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
