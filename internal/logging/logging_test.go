package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_DefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	log.Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug event written without --debug: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Str("command", "list").Msg("dispatch")

	out := buf.String()
	if !strings.Contains(out, "dispatch") || !strings.Contains(out, "command=list") {
		t.Errorf("unexpected debug output %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes, got %q", out)
	}
}
