package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// progressOut is where progress lines go; tests swap it.
var progressOut io.Writer = os.Stderr

// progressEnv disables progress output when any of these is set.
var progressEnv = []string{"NAMUPLOT_NO_PROGRESS", "NO_PROGRESS"}

// progress reports a multi-theme job on stderr: a heading, one line per
// finished theme, then a summary. A nil *progress is a silent reporter.
type progress struct {
	started time.Time
	themes  int
}

func startProgress(label string) *progress {
	if !progressEnabled() {
		return nil
	}
	fmt.Fprintf(progressOut, "%s\n", label)
	return &progress{started: time.Now()}
}

// Theme records one finished theme.
func (p *progress) Theme(name, detail string) {
	if p == nil {
		return
	}
	p.themes++
	if detail == "" {
		fmt.Fprintf(progressOut, "  %s\n", name)
		return
	}
	fmt.Fprintf(progressOut, "  %-12s %s\n", name, detail)
}

func (p *progress) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(progressOut, "done: %s in %s\n", plural(p.themes, "theme"), formatDuration(time.Since(p.started)))
}

func (p *progress) Fail(err error) {
	if p == nil {
		return
	}
	fmt.Fprintf(progressOut, "failed after %s: %v\n", plural(p.themes, "theme"), err)
}

func progressEnabled() bool {
	if noProgress || IsJSONOutput() || IsJSONLOutput() {
		return false
	}
	for _, name := range progressEnv {
		if _, ok := os.LookupEnv(name); ok {
			return false
		}
	}
	return true
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
