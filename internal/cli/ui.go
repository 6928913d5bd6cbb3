package cli

import (
	"os"

	"golang.org/x/term"
)

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorEnabled reports whether swatches should be painted.
func colorEnabled() bool {
	if noColor || IsJSONOutput() || IsJSONLOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}
