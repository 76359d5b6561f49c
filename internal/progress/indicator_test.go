package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewIndicatorCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewIndicator().(*CIIndicator); !ok {
		t.Error("expected CIIndicator when CI is set")
	}
}

func TestNewIndicatorTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewIndicator().(*TerminalIndicator); !ok {
		t.Error("expected TerminalIndicator outside CI")
	}
}

func TestRunStopsOnError(t *testing.T) {
	var buf bytes.Buffer
	ind := &CIIndicator{Out: &buf}

	boom := errors.New("boom")
	if err := Run(ind, "Generating prompts", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Generating prompts...") {
		t.Errorf("expected start line, got %q", out)
	}
	if !strings.Contains(out, "Generating prompts done") {
		t.Errorf("expected stop line, got %q", out)
	}
}

func TestCIIndicatorStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	ind := &CIIndicator{Out: &buf}
	ind.Stop()
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
