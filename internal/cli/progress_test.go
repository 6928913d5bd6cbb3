package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func captureProgress(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := progressOut
	progressOut = &buf
	t.Cleanup(func() { progressOut = prev })
	return &buf
}

func TestProgressReportsThemes(t *testing.T) {
	withFlags(t, false, false)
	noProgress = false
	buf := captureProgress(t)
	progressEnv = nil
	t.Cleanup(func() { progressEnv = []string{"NAMUPLOT_NO_PROGRESS", "NO_PROGRESS"} })

	report := startProgress("Rendering examples to out")
	if report == nil {
		t.Fatalf("expected an active reporter")
	}
	report.Theme("light", "light/line.png")
	report.Theme("dark", "")
	report.Done()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", buf.String())
	}
	if lines[0] != "Rendering examples to out" {
		t.Fatalf("unexpected heading %q", lines[0])
	}
	if !strings.Contains(lines[1], "light") || !strings.Contains(lines[1], "light/line.png") {
		t.Fatalf("unexpected theme line %q", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "dark" {
		t.Fatalf("unexpected theme line %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "done: 2 themes in ") {
		t.Fatalf("unexpected summary %q", lines[3])
	}
}

func TestProgressFail(t *testing.T) {
	withFlags(t, false, false)
	noProgress = false
	buf := captureProgress(t)
	progressEnv = nil
	t.Cleanup(func() { progressEnv = []string{"NAMUPLOT_NO_PROGRESS", "NO_PROGRESS"} })

	report := startProgress("Exporting")
	report.Theme("light", "builtin")
	report.Fail(errors.New("disk full"))

	if !strings.Contains(buf.String(), "failed after 1 theme: disk full") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestProgressDisabled(t *testing.T) {
	buf := captureProgress(t)

	withFlags(t, true, false)
	noProgress = false
	if report := startProgress("x"); report != nil {
		t.Fatalf("JSON output must disable progress")
	}

	withFlags(t, false, false)
	t.Setenv("NO_PROGRESS", "1")
	report := startProgress("x")
	if report != nil {
		t.Fatalf("NO_PROGRESS must disable progress")
	}
	// nil reporters are silent.
	report.Theme("light", "")
	report.Done()
	report.Fail(errors.New("boom"))

	if buf.Len() != 0 {
		t.Fatalf("disabled progress wrote %q", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		500 * time.Microsecond:  "500µs",
		1234 * time.Microsecond: "1ms",
		1260 * time.Millisecond: "1.3s",
	}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Fatalf("formatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}
