package appmenu

import (
    "errors"
    "fmt"
    "runtime"
    "strings"

    "github.com/wailsapp/wails/v2/pkg/menu"
    "github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// ブリッジが参照する識別子。
const (
    IDZoomLevel   = "zoom_level"
    IDZoomIn      = "zoom_in"
    IDZoomOut     = "zoom_out"
    IDActualSize  = "actual_size"
    IDCloseWindow = "close_window"
)

// BridgeIDs はブリッジを有効化する前にツリー内にちょうど1つずつ必要なID。
var BridgeIDs = []string{IDZoomLevel, IDZoomIn, IDZoomOut, IDActualSize}

var (
    ErrDuplicateID      = errors.New("duplicate menu id")
    ErrMissingID        = errors.New("missing menu id")
    ErrPlatformRejected = errors.New("platform rejected menu update")
)

// Tree はメニューツリー。起動時に1度だけ組み立て、以降はラベルのみ書き換える。
// Lookup/SetLabel は UI ループ（uiloop）上から呼ぶこと。
type Tree struct {
    roots    []*Entry
    byID     map[string]*Entry
    refresh  func() error
    disposed bool
}

// NewTree は任意のルート列からツリーを組み立てる。ID の重複はエラー。
func NewTree(roots ...*Entry) (*Tree, error) {
    t := &Tree{roots: roots, byID: map[string]*Entry{}}
    var dup []string
    t.Walk(func(e *Entry, _ int) {
        if e.ID == "" { return }
        if _, ok := t.byID[e.ID]; ok {
            dup = append(dup, e.ID)
            return
        }
        t.byID[e.ID] = e
    })
    if len(dup) > 0 {
        return nil, fmt.Errorf("%w: %s", ErrDuplicateID, strings.Join(dup, ", "))
    }
    return t, nil
}

// Build はアプリ標準のメニューツリーを固定順で組み立てる:
// アプリ, File, Edit, View→Zoom, Window。
func Build() (*Tree, error) {
    t, err := NewTree(
        RoleSub("app", RoleApp),
        Sub("file", "File",
            Action(IDCloseWindow, "Close Window", keys.CmdOrCtrl("w")),
        ),
        RoleSub("edit", RoleEdit),
        Sub("view", "View",
            Sub("zoom", "Zoom",
                Display(IDZoomLevel, "100%"),
                Sep(),
                Action(IDZoomIn, "Zoom In", keys.CmdOrCtrl("=")),
                Action(IDZoomOut, "Zoom Out", keys.CmdOrCtrl("-")),
                Sep(),
                Action(IDActualSize, "Actual Size", keys.CmdOrCtrl("0")),
            ),
        ),
        RoleSub("window", RoleWindow),
    )
    if err != nil {
        return nil, fmt.Errorf("メニュー構築に失敗しました: %w", err)
    }
    if err := t.Require(BridgeIDs...); err != nil {
        return nil, fmt.Errorf("メニュー構築に失敗しました: %w", err)
    }
    return t, nil
}

// Require は指定IDがツリー内に存在するか確認する（重複は NewTree で排除済み）。
func (t *Tree) Require(ids ...string) error {
    var missing []string
    for _, id := range ids {
        if _, ok := t.Lookup(id); !ok { missing = append(missing, id) }
    }
    if len(missing) > 0 {
        return fmt.Errorf("%w: %s", ErrMissingID, strings.Join(missing, ", "))
    }
    return nil
}

// Lookup は ID から項目を引く。見つからなければ false（nil ツリーでも panic しない）。
func (t *Tree) Lookup(id string) (*Entry, bool) {
    if t == nil || id == "" { return nil, false }
    e, ok := t.byID[id]
    return e, ok
}

// Roots はトップレベルの項目。
func (t *Tree) Roots() []*Entry { return t.roots }

// Walk は深さ優先で全項目を訪問する。depth はルートが 0。
func (t *Tree) Walk(fn func(e *Entry, depth int)) {
    var visit func(list []*Entry, depth int)
    visit = func(list []*Entry, depth int) {
        for _, e := range list {
            if e == nil { continue }
            fn(e, depth)
            visit(e.Children, depth+1)
        }
    }
    visit(t.roots, 0)
}

// SetRefresher はラベル変更後にネイティブメニューへ反映する関数を設定する。
func (t *Tree) SetRefresher(fn func() error) { t.refresh = fn }

// Dispose はウィンドウ破棄後に呼ぶ。以降の SetLabel は ErrPlatformRejected。
func (t *Tree) Dispose() { t.disposed = true }

// SetLabel は項目の表示テキストをその場で書き換える。
func (t *Tree) SetLabel(e *Entry, text string) error {
    if e == nil {
        return fmt.Errorf("%w: nil entry", ErrPlatformRejected)
    }
    if t.disposed {
        return fmt.Errorf("%w: %s: menu disposed", ErrPlatformRejected, e.ID)
    }
    prev := e.Label
    e.Label = text
    if e.native != nil { e.native.Label = text }
    if t.refresh == nil { return nil }
    if err := t.refresh(); err != nil {
        // 反映できなかった場合はモデル側も戻しておく
        e.Label = prev
        if e.native != nil { e.native.Label = prev }
        return fmt.Errorf("%w: %s: %v", ErrPlatformRejected, e.ID, err)
    }
    return nil
}

// Native は Wails のメニューを生成する。選択可能な項目のクリックは onSelect(id) に渡る。
func (t *Tree) Native(onSelect func(id string)) *menu.Menu {
    return t.nativeFor(runtime.GOOS, onSelect)
}

// nativeFor は goos 向けのメニューを生成する。
// Role 付きのサブメニューは macOS 専用（SubMenu が nil なので Linux では panic、Windows では空メニューになる）。
// それ以外の OS では出力しない。
func (t *Tree) nativeFor(goos string, onSelect func(id string)) *menu.Menu {
    root := menu.NewMenu()
    for _, e := range t.roots {
        if e.Role != RoleNone && goos != "darwin" { continue }
        if item := t.nativeItem(e, onSelect); item != nil { root.Append(item) }
    }
    return root
}

func (t *Tree) nativeItem(e *Entry, onSelect func(id string)) *menu.MenuItem {
    var item *menu.MenuItem
    switch e.Kind {
    case Separator:
        item = menu.Separator()
    case Submenu:
        switch e.Role {
        case RoleApp:
            item = menu.AppMenu()
        case RoleEdit:
            item = menu.EditMenu()
        case RoleWindow:
            item = menu.WindowMenu()
        default:
            sub := menu.NewMenu()
            for _, c := range e.Children {
                if ci := t.nativeItem(c, onSelect); ci != nil { sub.Append(ci) }
            }
            item = menu.SubMenu(e.Label, sub)
        }
    case DisplayItem:
        item = &menu.MenuItem{Label: e.Label, Type: menu.TextType, Disabled: true}
    case ActionItem:
        id := e.ID
        item = &menu.MenuItem{Label: e.Label, Type: menu.TextType, Accelerator: e.Accelerator, Disabled: !e.Enabled}
        if onSelect != nil {
            item.Click = func(*menu.CallbackData) { onSelect(id) }
        }
    default:
        return nil
    }
    e.native = item
    return item
}
