// Package main is the entry point for the vmsg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/vmsg/cmd/vmsg/commands"
	"github.com/thoreinstein/vmsg/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, exitErr.Suggestion)
	}
	os.Exit(errors.Code(err))
}
