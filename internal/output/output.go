// Package output handles console formatting for user-facing command-line
// messages.
package output

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Successf prints a success message to stderr in green.
func Successf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, text.FgGreen.Sprintf(format, args...))
}

// Warnf prints a warning message to stderr in yellow.
func Warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, text.FgYellow.Sprintf(format, args...))
}

// Errorf prints an error message to stderr in red. Use for handled failures
// shown to users in a consistent format.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, text.FgRed.Sprintf(format, args...))
}

// Infof prints a neutral status message to stderr.
func Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
