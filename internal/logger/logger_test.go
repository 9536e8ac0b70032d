package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]pterm.LogLevel{
		"trace":    pterm.LogLevelTrace,
		"DEBUG":    pterm.LogLevelDebug,
		" info ":   pterm.LogLevelInfo,
		"warning":  pterm.LogLevelWarn,
		"error":    pterm.LogLevelError,
		"disabled": pterm.LogLevelDisabled,
		"nonsense": pterm.LogLevelDisabled,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.Debug("hidden")
	log.Info("shown", log.Args("category", "Rent"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "Rent") {
		t.Errorf("info message missing: %q", out)
	}
}
