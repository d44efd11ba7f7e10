package main

import (
    "bytes"
    "strings"
    "testing"

    "zoomshell/internal/appmenu"
)

func mustBuild(t *testing.T) *appmenu.Tree {
    t.Helper()
    tr, err := appmenu.Build()
    if err != nil { t.Fatal(err) }
    return tr
}

func TestWritePlain_Order(t *testing.T) {
    var buf bytes.Buffer
    writePlain(&buf, mustBuild(t))
    lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
    if len(lines) != 13 { t.Fatalf("lines=%d:\n%s", len(lines), buf.String()) }
    if !strings.HasPrefix(lines[0], "(app menu)") { t.Fatalf("first line %q", lines[0]) }
    if !strings.HasPrefix(lines[len(lines)-1], "(window menu)") { t.Fatalf("last line %q", lines[len(lines)-1]) }

    var zoomIn string
    for _, l := range lines { if strings.Contains(l, "[zoom_in]") { zoomIn = l } }
    if !strings.HasPrefix(zoomIn, "    Zoom In") { t.Fatalf("zoom_in should be nested two levels: %q", zoomIn) }
    if !strings.Contains(zoomIn, "cmdorctrl+=") { t.Fatalf("missing accelerator: %q", zoomIn) }

    // Zoom Out と Actual Size の間にも区切り線
    for i, l := range lines {
        if strings.Contains(l, "[actual_size]") {
            if strings.TrimSpace(lines[i-1]) != "────" { t.Fatalf("no separator before actual_size: %q", lines[i-1]) }
            if !strings.Contains(lines[i-2], "[zoom_out]") { t.Fatalf("zoom_out should precede the separator: %q", lines[i-2]) }
        }
    }
}

func TestRenderTree_ContainsIDs(t *testing.T) {
    out := renderTree(mustBuild(t))
    for _, id := range append([]string{appmenu.IDCloseWindow}, appmenu.BridgeIDs...) {
        if !strings.Contains(out, id) { t.Fatalf("rendered tree missing %q:\n%s", id, out) }
    }
}

func TestWriteIDs(t *testing.T) {
    var buf bytes.Buffer
    writeIDs(&buf, mustBuild(t))
    out := buf.String()
    for _, want := range []string{"zoom_in", "menu-zoom in", "zoom_out", "menu-zoom out", "actual_size", "menu-zoom reset", `"100%"`} {
        if !strings.Contains(out, want) { t.Fatalf("missing %q in:\n%s", want, out) }
    }
}
