package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("loaded dataset", "skills", 14, "source", "tshape")

	out := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("missing HH:MM:SS.cc timestamp: %q", out)
	}
	for _, want := range []string{"loaded dataset", "skills=14", "source=tshape"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("rendered svg") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache miss", "key", "layout") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache miss", "key", "layout") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("labels still overlap", "residual", 2) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered target view")

	out := buf.String()
	if !regexp.MustCompile(`Rendered target view \(\d+(\.\d+)?(ns|µs|ms|s)\)`).MatchString(out) {
		t.Errorf("progress output %q should end with the elapsed time", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a bare context should fall back to the default logger")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Fatal("loggerFromContext should return the attached logger")
	}

	loggerFromContext(ctx).Info("serving dashboard", "addr", ":8080")
	if !strings.Contains(buf.String(), "addr=:8080") {
		t.Errorf("attached logger should write to its buffer, got %q", buf.String())
	}
}

func TestCommandContextCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{"cache", "path"})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	sub, _, err := cmd.Find([]string{"cache", "path"})
	if err != nil {
		t.Fatal(err)
	}
	if loggerFromContext(sub.Context()) != c.Logger {
		t.Error("subcommands should see the CLI logger in their context")
	}
}
