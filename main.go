package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/trailspace/cmd/cli"
	"github.com/temirov/trailspace/internal/whitespace"
)

const (
	exitErrorTemplateConstant      = "%v\n"
	genericFailureExitCodeConstant = 1
)

// main executes the trailspace command-line application.
// Check outcomes were already printed by the command and only select the exit code.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	var exitStatusError whitespace.ExitStatusError
	if errors.As(executionError, &exitStatusError) {
		os.Exit(exitStatusError.ExitCode())
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(genericFailureExitCodeConstant)
}
