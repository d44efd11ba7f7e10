// Package bridge はネイティブメニューとコンテンツビューを双方向につなぐ。
//
// 送信方向: メニュー選択 → "menu-zoom" イベント（"in" / "out" / "reset"）。
// 受信方向: コンテンツビューが計算した倍率 → zoom_level 項目のラベル "<n>%"。
//
// どちらの方向も失敗はその場で握りつぶし、相手側へエラーを伝播しない。
package bridge

import (
    "errors"
    "strconv"

    "zoomshell/internal/appmenu"
    "zoomshell/internal/logging"
    "zoomshell/internal/uiloop"
)

// ErrNoWindow はイベント送信先のウィンドウがまだ無い（または閉じた）ことを表す。
var ErrNoWindow = errors.New("content view not attached")

// Emitter はコンテンツビューへの一方向イベント送信。
type Emitter interface {
    Emit(name string, payload any) error
}

// EmitterFunc は関数を Emitter として使うためのアダプタ。
type EmitterFunc func(name string, payload any) error

func (f EmitterFunc) Emit(name string, payload any) error { return f(name, payload) }

type Bridge struct {
    tree *appmenu.Tree
    emit Emitter
    loop *uiloop.Loop
    log  *logging.Logger
}

// New はブリッジを作る。loop が nil の場合は呼び出し元のゴルーチンで直接実行する。
func New(tree *appmenu.Tree, emit Emitter, loop *uiloop.Loop, log *logging.Logger) *Bridge {
    if log == nil { log = logging.Discard() }
    return &Bridge{tree: tree, emit: emit, loop: loop, log: log}
}

// Select はメニュー選択イベントを UI ループに積む。Select が呼ばれた順に Dispatch される。
// wails はクリックごとに別ゴルーチンでコールバックを呼ぶので、クリック同士の順序は保証しない。
func (b *Bridge) Select(id string) {
    if b.loop == nil {
        b.Dispatch(id)
        return
    }
    if !b.loop.Post(func() { b.Dispatch(id) }) {
        b.log.Debugf("menu selection dropped (ui loop stopped): %s", id)
    }
}

// Dispatch は id に対応するコマンドを1回だけ送る。送信したら true。
// 対応表に無い id（Undo や Close Window など）は何もしない。
func (b *Bridge) Dispatch(id string) bool {
    cmd, ok := CommandFor(id)
    if !ok {
        b.log.Tracef("menu id not bridged: %s", id)
        return false
    }
    if b.emit == nil {
        b.log.Debugf("%s dropped: no emitter", EventMenuZoom)
        return false
    }
    if err := b.emit.Emit(EventMenuZoom, cmd.String()); err != nil {
        if errors.Is(err, ErrNoWindow) {
            b.log.Debugf("%s %s dropped: no window", EventMenuZoom, cmd)
        } else {
            b.log.Debugf("%s %s dropped: %v", EventMenuZoom, cmd, err)
        }
        return false
    }
    b.log.Tracef("%s %s", EventMenuZoom, cmd)
    return true
}

// UpdateDisplay は zoom_level のラベルを "<percentage>%" に書き換える。
// UI ループ上で実行し、終わるまで待つ。項目が無い・書き換え拒否はどちらも無視する。
func (b *Bridge) UpdateDisplay(percentage uint) {
    if b.loop == nil {
        b.updateDisplay(percentage)
        return
    }
    if !b.loop.Do(func() { b.updateDisplay(percentage) }) {
        b.log.Debugf("zoom label update dropped (ui loop stopped): %d", percentage)
    }
}

func (b *Bridge) updateDisplay(percentage uint) {
    e, ok := b.tree.Lookup(appmenu.IDZoomLevel)
    if !ok {
        b.log.Debugf("zoom label update skipped: %s not in menu", appmenu.IDZoomLevel)
        return
    }
    if err := b.tree.SetLabel(e, FormatPercent(percentage)); err != nil {
        b.log.Debugf("zoom label update skipped: %v", err)
    }
}

// FormatPercent は 150 → "150%"。
func FormatPercent(p uint) string {
    return strconv.FormatUint(uint64(p), 10) + "%"
}
