package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/syncinstall/cmd/syncinstall"
	"github.com/arthur-debert/syncinstall/pkg/ui/output/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := syncinstall.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !syncinstall.AlreadyRendered(err) {
			// Print the error in red
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		stop()
		os.Exit(1)
	}
}
