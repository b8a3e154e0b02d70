package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerOffTerminalDrawsNothing(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "Rendering...")
	if s.animate {
		t.Fatal("a buffer is not a terminal")
	}
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q off a terminal", buf.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerAnimates(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, "Rendering...")
	s.animate = true
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering...") {
		t.Errorf("spinner output missing message: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("Stop should clear the line: %q", out)
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerTo(ctx, &bytes.Buffer{}, "Testing with context...")
	s.Start()
	cancel()

	// Stop waits for the goroutine to exit.
	s.Stop()
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerTo(ctx, &bytes.Buffer{}, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerTo(context.Background(), &bytes.Buffer{}, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopMessages(t *testing.T) {
	var status bytes.Buffer
	prev := statusOut
	statusOut = &status
	t.Cleanup(func() { statusOut = prev })

	s := newSpinnerWithContext(context.Background(), "Rendering...")
	s.Start()
	s.StopWithSuccess("Rendered map.json")

	s = newSpinnerWithContext(context.Background(), "Rendering...")
	s.Start()
	s.StopWithError("Render failed")

	out := status.String()
	for _, want := range []string{iconSuccess + " Rendered map.json", iconError + " Render failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}
