package appmenu

import (
    "strings"

    "github.com/wailsapp/wails/v2/pkg/menu"
    "github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// Kind はメニュー項目の種別。
type Kind int

const (
    ActionItem Kind = iota
    DisplayItem
    Separator
    Submenu
)

func (k Kind) String() string {
    switch k {
    case ActionItem:
        return "action"
    case DisplayItem:
        return "display"
    case Separator:
        return "separator"
    case Submenu:
        return "submenu"
    }
    return "unknown"
}

// Role はプラットフォーム標準メニュー（アプリ/編集/ウィンドウ）を表す。
// RoleNone 以外のサブメニューは中身をツールキット側が生成する。
type Role int

const (
    RoleNone Role = iota
    RoleApp
    RoleEdit
    RoleWindow
)

// Entry はメニューツリーの1ノード。
// ID だけが境界をまたぐ安定した参照で、Label は表示用の可変状態。
type Entry struct {
    ID          string
    Label       string
    Kind        Kind
    Accelerator *keys.Accelerator
    Enabled     bool
    Role        Role
    Children    []*Entry

    native *menu.MenuItem
}

// Action は選択可能なコマンド項目を作る。
func Action(id, label string, accel *keys.Accelerator) *Entry {
    return &Entry{ID: id, Label: label, Kind: ActionItem, Accelerator: accel, Enabled: true}
}

// Display は操作不可の表示専用項目を作る。
func Display(id, label string) *Entry {
    return &Entry{ID: id, Label: label, Kind: DisplayItem}
}

// Sep は区切り線。ID は空のままでよい。
func Sep() *Entry {
    return &Entry{Kind: Separator}
}

// Sub はサブメニュー。
func Sub(id, label string, children ...*Entry) *Entry {
    return &Entry{ID: id, Label: label, Kind: Submenu, Enabled: true, Children: children}
}

// RoleSub はプラットフォーム標準のサブメニュー。
func RoleSub(id string, role Role) *Entry {
    return &Entry{ID: id, Kind: Submenu, Enabled: true, Role: role}
}

// AcceleratorString は表示用のキー表記（例: "cmdorctrl+="）。
func (e *Entry) AcceleratorString() string {
    if e == nil || e.Accelerator == nil { return "" }
    parts := make([]string, 0, len(e.Accelerator.Modifiers)+1)
    for _, m := range e.Accelerator.Modifiers { parts = append(parts, string(m)) }
    parts = append(parts, e.Accelerator.Key)
    return strings.Join(parts, "+")
}
