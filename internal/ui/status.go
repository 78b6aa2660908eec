// Package ui holds terminal styling: themes for the painter and the
// one-line error printer used by the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
)

var stderr io.Writer = os.Stderr

// Fail prints an error line to stderr.
func Fail(msg string) {
	fmt.Fprintln(stderr, ThemeByName("classic").Error.Render("✖ "+msg))
}
