// Breakeven compares what electrical devices really cost to own.
//
// Enter each device's upfront price, its average power draw and the local
// electricity rate, and breakeven tabulates the devices and charts their
// total cost over 36 months. Device lists can be saved to and loaded from
// the saves directory under the current working directory.
//
// Usage:
//
//	breakeven [flags]
//
// See 'breakeven --help' for available flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/breakeven/internal/version"
)

// Exit codes
const (
	exitOK         = 0
	exitError      = 1
	exitUsage      = 2
	exitNoTerminal = 3
	exitTUIFailure = 4
)

// exitCodeError carries a process exit code through cobra
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	return &exitCodeError{code: code, err: err}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps its error to an exit code
func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var coded *exitCodeError
	if errors.As(err, &coded) {
		return coded.code
	}
	// Anything cobra rejects before RunE is a usage error
	return exitUsage
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Compare the break-even cost of electrical devices",
		Long: `An interactive terminal tool for comparing electrical devices.

Type each device's electricity rate (kWh per currency unit), upfront cost
and average wattage, press enter to add it, and compare the total cost
lines over a 36-month horizon. ctrl+s and ctrl+l save and load the list
named in the last field; lists live in the ./saves directory.

Environment:
  BREAKEVEN_NO_COLOR_DEVICES  same as --no-color-devices
  BREAKEVEN_CLEAR_ON_SUBMIT   empty the device fields after adding a device
  BREAKEVEN_LOG_LEVEL         debug, info, warn or error (logging is off when unset)
  BREAKEVEN_LOG_FILE          file logs are appended to (default breakeven.log)`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runEditor,
	}

	// Disable automatic completion command generation
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("breakeven " + version.Full() + "\n")

	cmd.Flags().Bool("no-color-devices", false, "Draw every device in gray instead of a random color")

	return cmd
}
