package main

import (
    "flag"
    "fmt"
    "io"
    "log"
    "os"

    "zoomshell/internal/appmenu"
    "zoomshell/internal/bridge"
)

// これらは ldflags で上書き可能:
// go build -ldflags "-X main.version=1.2.3 -X main.commit=abcd123 -X main.date=2026-10-19T01:23:45Z"
var (
    version = "dev"
    commit  = "none"
    date    = "unknown"
)

func main() {
    if len(os.Args) < 2 {
        usage()
        os.Exit(2)
    }

    switch os.Args[1] {
    case "tree":
        runTree(os.Args[2:])
    case "ids":
        runIDs(os.Args[2:])
    case "version", "-v", "--version":
        printVersion()
    case "help", "-h", "--help":
        if len(os.Args) > 2 && os.Args[2] == "tree" {
            treeUsage()
        } else {
            usage()
        }
    default:
        log.Printf("不明なサブコマンド: %s", os.Args[1])
        usage()
        os.Exit(2)
    }
}

func usage() {
    fmt.Println("zoommenu - zoomshell のメニュー定義を確認するCLI")
    fmt.Println("")
    fmt.Println("使用方法:")
    fmt.Println("  zoommenu <command> [options]")
    fmt.Println("")
    fmt.Println("コマンド:")
    fmt.Println("  tree      メニューツリーを表示（ID・種別・ショートカット）")
    fmt.Println("  ids       ブリッジ対象のIDと送信ペイロードを表示")
    fmt.Println("  version   バージョン情報を表示")
}

func treeUsage() {
    fmt.Fprintln(os.Stderr, "Usage: zoommenu tree [options]")
    fmt.Fprintln(os.Stderr, "\n主なオプション:")
    fmt.Fprintln(os.Stderr, "  -plain    罫線なしのインデント表示")
}

func printVersion() {
    fmt.Printf("zoommenu %s (commit %s, built %s)\n", version, commit, date)
}

func runTree(args []string) {
    fs := flag.NewFlagSet("tree", flag.ExitOnError)
    plain := fs.Bool("plain", false, "罫線なしのインデント表示")
    fs.Usage = treeUsage
    _ = fs.Parse(args)

    t, err := appmenu.Build()
    if err != nil {
        log.Fatal(err)
    }
    if *plain {
        writePlain(os.Stdout, t)
        return
    }
    fmt.Fprintln(os.Stdout, renderTree(t))
}

func runIDs(args []string) {
    fs := flag.NewFlagSet("ids", flag.ExitOnError)
    _ = fs.Parse(args)

    t, err := appmenu.Build()
    if err != nil {
        log.Fatal(err)
    }
    writeIDs(os.Stdout, t)
}

// writeIDs はブリッジ対象の ID → ペイロードを一覧する。
func writeIDs(w io.Writer, t *appmenu.Tree) {
    for _, id := range bridge.CommandIDs() {
        cmd, _ := bridge.CommandFor(id)
        e, ok := t.Lookup(id)
        accel := ""
        if ok { accel = e.AcceleratorString() }
        fmt.Fprintf(w, "%-12s %s %-6s %s\n", id, bridge.EventMenuZoom, cmd, accel)
    }
    if e, ok := t.Lookup(appmenu.IDZoomLevel); ok {
        fmt.Fprintf(w, "%-12s label %q\n", e.ID, e.Label)
    }
}
