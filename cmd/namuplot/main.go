// Command namuplot lists chart themes and renders example charts.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/namuplot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
