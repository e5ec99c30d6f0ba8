// Package terminal prints the command stream with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/syncinstall/pkg/plan"
	"github.com/arthur-debert/syncinstall/pkg/ui/output/styles"
)

// Renderer colors each step by its kind
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// kindStyle maps a step kind to its style name
func kindStyle(kind plan.Kind) string {
	switch kind {
	case plan.KindRemove:
		return "Remove"
	case plan.KindUpdate:
		return "Update"
	default:
		return "Install"
	}
}

// RenderStep writes the same "---> [cmd]" text as the plain stream. The kind
// only shows through the command color; dry-run steps are italic.
func (r *Renderer) RenderStep(step plan.Step, dryRun bool) error {
	arrow := styles.GetStyle("Arrow").Render("--->")

	commandStyle := styles.MergeStyles("Command", kindStyle(step.Kind))
	if dryRun {
		commandStyle = styles.MergeStyles("Command", kindStyle(step.Kind), "Italic")
	}

	_, err := fmt.Fprintf(r.output, "%s [%s]\n", arrow, commandStyle.Render(step.Command.String()))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", styles.GetStyle("Error").Render("Error:"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("DryRunBanner").Render(msg))
	return err
}
