package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/syncinstall/cmd/syncinstall"
	"github.com/arthur-debert/syncinstall/internal/version"
)

// Writes syncinstall(1) to stdout, or one page per command into the
// directory given as first argument.
func main() {
	rootCmd := syncinstall.NewRootCmd()
	rootCmd.DisableAutoGenTag = true

	header := &doc.GenManHeader{
		Title:   "SYNCINSTALL",
		Section: "1",
		Source:  "syncinstall " + version.Version,
		Manual:  "syncinstall manual",
	}
	if t, err := time.Parse(time.RFC3339, version.Date); err == nil {
		header.Date = &t
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
