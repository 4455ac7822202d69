package progress

import (
	"bytes"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf, Description: "Rendering"}

	r.Start(2)
	r.Update(1, "frame-0001.png")
	r.Update(2, "frame-0002.png")
	r.Finish()

	want := "Rendering: 2 frames\n[1/2] frame-0001.png\n[2/2] frame-0002.png\nRendering: done\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*LineReporter); !ok {
		t.Error("expected LineReporter under CI")
	}
}

func TestTerminalReporterWriter(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	r := &TerminalReporter{Description: "Rendering", Out: &buf}

	r.Start(3)
	r.Update(3, "done")
	r.Finish()

	if buf.Len() == 0 {
		t.Error("expected progress output")
	}
}
