package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kolamstudio/kolam/pkg/observability"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner("Testing...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Spinner should be stopped, not cancelled
	// (Cancelled returns true only if Stop was called due to context cancellation)
	_ = s.Cancelled() // Verify method is callable; value not asserted as Stop() doesn't set cancelled
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Testing with context...")
	s.Start()

	// Cancel the context
	cancel()

	// Give goroutine time to notice cancellation
	time.Sleep(100 * time.Millisecond)

	// Spinner should be cancelled
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Testing with timeout...")
	s.Start()

	// Wait for timeout
	time.Sleep(100 * time.Millisecond)

	// Spinner should be cancelled due to timeout
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Testing idempotent stop...")
	s.Start()

	// Stop multiple times should not panic
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newSpinner("Testing success...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Done!")
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("Testing error...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Failed!")
}

func TestNewSpinnerWithContextNilParent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Test")
	s.Start()
	s.Stop()
}

func TestSpinnerUpdate(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Synthesizing...")
	s.w = &buf

	s.Update("Rendering svg...")
	if got := s.Message(); got != "Rendering svg..." {
		t.Errorf("Message() = %q", got)
	}
	s.Stop()
	if !strings.Contains(buf.String(), "\r") {
		t.Error("Stop should clear the spinner line")
	}
}

func TestSpinnerHooks(t *testing.T) {
	s := newSpinner("Synthesizing...")
	s.w = io.Discard
	restore := narrate(s)
	defer restore()

	observability.Pipeline().OnSynthesizeStart(context.Background(), "lotus")
	if got := s.Message(); got != "Synthesizing lotus..." {
		t.Errorf("after synthesize start: %q", got)
	}
	observability.Pipeline().OnRenderStart(context.Background(), []string{"svg", "png"})
	if got := s.Message(); got != "Rendering svg, png..." {
		t.Errorf("after render start: %q", got)
	}

	restore()
	observability.Pipeline().OnRenderStart(context.Background(), []string{"pdf"})
	if got := s.Message(); got != "Rendering svg, png..." {
		t.Errorf("hooks still routed after restore: %q", got)
	}
}
