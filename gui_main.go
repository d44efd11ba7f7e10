package main

import (
    "embed"
    "errors"
    "log"
    "os"

    "zoomshell/internal/config"
    "zoomshell/internal/logging"

    "github.com/wailsapp/wails/v2"
    "github.com/wailsapp/wails/v2/pkg/options"
    "github.com/wailsapp/wails/v2/pkg/options/assetserver"
    "github.com/wailsapp/wails/v2/pkg/options/mac"
    "github.com/wailsapp/wails/v2/pkg/options/windows"
)

// フロントエンド静的ファイル（frontend/dist）をバンドル
//go:embed all:frontend/dist
var assets embed.FS

func main() {
    cfg, err := config.Load()
    if err != nil && !errors.Is(err, os.ErrNotExist) {
        log.Printf("設定の読み込みに失敗しました（既定値で起動します）: %v", err)
    }
    if cfg == nil { cfg = config.Default() }

    lg := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))
    if err := lg.Configure(cfg.Log.File); err != nil {
        log.Printf("ログファイルを開けません（stderr に出力します）: %v", err)
    }

    // メニューが無いとアプリとして成立しないので、ここでの失敗は起動中止
    app, err := NewApp(cfg, lg)
    if err != nil {
        log.Fatalf("メニューの構築に失敗しました: %v", err)
    }

    if err := wails.Run(&options.App{
        Title:       cfg.Window.Title,
        Width:       cfg.Window.Width,
        Height:      cfg.Window.Height,
        AssetServer: &assetserver.Options{Assets: assets},
        Menu:        app.menu,
        Logger:      lg,
        LogLevel:    lg.Level(),
        OnStartup:     app.startup,
        OnDomReady:    app.domReady,
        OnBeforeClose: app.beforeClose,
        OnShutdown:    app.shutdown,
        Bind:          []any{app},
        Mac: &mac.Options{
            TitleBar:   mac.TitleBarDefault(),
            Appearance: mac.NSAppearanceNameAqua,
        },
        Windows: &windows.Options{
            WebviewIsTransparent: false,
            WindowIsTranslucent:  false,
        },
        BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
    }); err != nil {
        panic(err)
    }
}
