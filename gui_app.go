package main

import (
    "context"
    "errors"
    goruntime "runtime"
    "sync"
    "time"

    "zoomshell/internal/appmenu"
    "zoomshell/internal/bridge"
    "zoomshell/internal/config"
    "zoomshell/internal/logging"
    "zoomshell/internal/uiloop"

    "github.com/wailsapp/wails/v2/pkg/menu"
    "github.com/wailsapp/wails/v2/pkg/runtime"
)

var errNotAttached = errors.New("window not attached")

type App struct {
    mu    sync.Mutex
    ctx   context.Context
    ready bool // DOM 読み込み済みでイベントを受け取れる状態
    cfg   *config.Config
    log   *logging.Logger
    // メニューと UI ループ
    tree     *appmenu.Tree
    menu     *menu.Menu
    loop     *uiloop.Loop
    bridge   *bridge.Bridge
    native   map[string]func()
    loopCtx  context.Context
    stopLoop context.CancelFunc
}

// NewApp はメニューを組み立ててブリッジを用意する。メニュー構築の失敗は起動不能として返す。
func NewApp(cfg *config.Config, lg *logging.Logger) (*App, error) {
    if cfg == nil { cfg = config.Default() }
    if lg == nil { lg = logging.Discard() }
    tree, err := appmenu.Build()
    if err != nil { return nil, err }

    a := &App{cfg: cfg, log: lg, tree: tree, loop: uiloop.New(64)}
    a.bridge = bridge.New(tree, bridge.EmitterFunc(a.emit), a.loop, lg)
    // ブリッジを通さずシェル側で処理する項目
    a.native = map[string]func(){
        appmenu.IDCloseWindow: a.closeWindow,
    }
    a.menu = tree.Native(a.onMenuSelect)
    tree.SetRefresher(a.refreshMenu)

    loopCtx, cancel := context.WithCancel(context.Background())
    a.loopCtx, a.stopLoop = loopCtx, cancel
    go a.loop.Run(loopCtx)
    return a, nil
}

func (a *App) startup(ctx context.Context) {
    a.mu.Lock()
    a.ctx = ctx
    a.mu.Unlock()

    if p, err := config.Path(); err == nil {
        if err := config.Watch(a.loopCtx, p, a.applyConfig, func(err error) { a.log.Debugf("設定の再読み込みに失敗: %v", err) }); err != nil {
            a.log.Debugf("設定ファイルの監視を開始できません: %v", err)
        }
    }
    a.log.Info("GUI 起動")
}

func (a *App) domReady(ctx context.Context) {
    a.mu.Lock()
    a.ready = true
    a.mu.Unlock()
    _ = a.emitLog("info", "コンテンツビュー準備完了")
}

func (a *App) beforeClose(ctx context.Context) bool {
    a.mu.Lock()
    a.ready = false
    a.mu.Unlock()
    return false
}

func (a *App) shutdown(ctx context.Context) {
    a.mu.Lock()
    a.ready = false
    a.ctx = nil
    a.mu.Unlock()
    a.loop.Do(a.tree.Dispose)
    a.stopLoop()
    _ = a.log.Close()
}

// UpdateZoomLabel はコンテンツビューから呼ばれ、View→Zoom の倍率表示を "<percentage>%" に更新する。
// JS: window.go.main.App.UpdateZoomLabel(150)
func (a *App) UpdateZoomLabel(percentage uint) {
    a.bridge.UpdateDisplay(percentage)
}

// 設定API
func (a *App) GetConfig() (*config.Config, error) {
    a.mu.Lock()
    defer a.mu.Unlock()
    if a.cfg == nil { return config.Default(), nil }
    return a.cfg, nil
}

func (a *App) SaveConfig(c *config.Config) error {
    if c == nil { return errors.New("config is nil") }
    if err := config.Save(c); err != nil { return err }
    a.applyConfig(c)
    return a.emitLog("info", "設定を保存しました")
}

// applyConfig はログ設定を即時反映する（ウィンドウサイズは次回起動時）。
func (a *App) applyConfig(c *config.Config) {
    a.mu.Lock()
    a.cfg = c
    a.mu.Unlock()
    a.log.SetLevel(logging.ParseLevel(c.Log.Level))
    if err := a.log.Configure(c.Log.File); err != nil {
        a.log.Errorf("ログ出力先の変更に失敗: %v", err)
    }
}

// onMenuSelect はメニュークリックの入口。シェル側の項目以外はブリッジへ。
func (a *App) onMenuSelect(id string) {
    if fn, ok := a.native[id]; ok {
        fn()
        return
    }
    a.bridge.Select(id)
}

// closeWindow は File→Close Window。Wails はウィンドウ1枚なので、
// macOS ではウィンドウを隠してアプリは残し（標準の Close Window と同じ）、他の OS では終了する。
func (a *App) closeWindow() {
    a.mu.Lock()
    ctx := a.ctx
    a.mu.Unlock()
    if ctx == nil { return }
    closeWindowFor(goruntime.GOOS)(ctx)
}

func closeWindowFor(goos string) func(ctx context.Context) {
    if goos == "darwin" { return runtime.WindowHide }
    return runtime.Quit
}

// emit はコンテンツビューへのイベント送信。ウィンドウが無ければ bridge.ErrNoWindow。
func (a *App) emit(name string, payload any) error {
    a.mu.Lock()
    ctx, ready := a.ctx, a.ready
    a.mu.Unlock()
    if ctx == nil || !ready { return bridge.ErrNoWindow }
    runtime.EventsEmit(ctx, name, payload)
    return nil
}

// refreshMenu はモデル側のラベル変更をネイティブメニューへ反映する。UI ループ上で呼ばれる。
// Linux では wails が applicationMenu を保持しないため MenuUpdateApplicationMenu は何もしない。
// GTK のメニューは作成時のラベルのままになるが、それを検出する API は無い。
func (a *App) refreshMenu() error {
    a.mu.Lock()
    ctx := a.ctx
    a.mu.Unlock()
    if ctx == nil { return errNotAttached }
    runtime.MenuUpdateApplicationMenu(ctx)
    return nil
}

// ログイベント
func (a *App) emitLog(level, msg string) error {
    switch level {
    case "error":
        a.log.Error(msg)
    case "debug":
        a.log.Debug(msg)
    default:
        a.log.Info(msg)
    }
    a.mu.Lock()
    ctx, ready := a.ctx, a.ready
    a.mu.Unlock()
    if ctx != nil && ready {
        runtime.EventsEmit(ctx, "log", map[string]any{"level": level, "msg": msg, "time": time.Now().Format(time.RFC3339)})
    }
    return nil
}
