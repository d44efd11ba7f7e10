package logging

import (
    "bytes"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestParseLevel(t *testing.T) {
    cases := map[string]logger.LogLevel{
        "":        logger.INFO,
        "trace":   logger.TRACE,
        " DEBUG ": logger.DEBUG,
        "info":    logger.INFO,
        "warning": logger.WARNING,
        "error":   logger.ERROR,
        "bogus":   logger.INFO,
    }
    for in, want := range cases {
        if got := ParseLevel(in); got != want {
            t.Fatalf("ParseLevel(%q)=%v; want %v", in, got, want)
        }
    }
}

func TestLevelFilter(t *testing.T) {
    var buf bytes.Buffer
    l := New(&buf, logger.INFO)
    l.Debug("hidden")
    l.Info("shown")
    out := buf.String()
    if strings.Contains(out, "hidden") { t.Fatalf("debug leaked at INFO: %q", out) }
    if !strings.Contains(out, "[info] shown") { t.Fatalf("missing info line: %q", out) }

    buf.Reset()
    l.SetLevel(logger.DEBUG)
    l.Debugf("zoom=%d", 150)
    if !strings.Contains(buf.String(), "[debug] zoom=150") { t.Fatalf("got %q", buf.String()) }
}

func TestConfigure_File(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "nested", "zoomshell.log")
    l := New(nil, logger.INFO)
    if err := l.Configure(path); err != nil { t.Fatalf("Configure: %v", err) }
    l.Info("hello")
    if err := l.Close(); err != nil { t.Fatal(err) }
    bt, err := os.ReadFile(path)
    if err != nil { t.Fatal(err) }
    if !strings.Contains(string(bt), "[info] hello") { t.Fatalf("file=%q", bt) }
}
