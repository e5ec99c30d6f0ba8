// Package text prints the command stream without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/syncinstall/pkg/plan"
)

// Renderer writes "---> [command]" lines
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderStep writes the step's command between brackets
func (r *Renderer) RenderStep(step plan.Step, _ bool) error {
	_, err := fmt.Fprintf(r.output, "---> [%s]\n", step.Command)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
