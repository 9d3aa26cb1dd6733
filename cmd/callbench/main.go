// Command callbench times nested method calls and prints the per-iteration
// durations, or their geometric mean, one value per line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexshd/callbench"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and maps its error to an exit code. Configuration errors
// also print the usage text.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	if errors.Is(err, callbench.ErrConfiguration) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, callbench.ErrConfiguration), errors.Is(err, callbench.ErrTimerSource):
		return exitUsage
	default:
		return exitFailed
	}
}
