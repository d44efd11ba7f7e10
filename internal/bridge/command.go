package bridge

import "zoomshell/internal/appmenu"

// EventMenuZoom はコンテンツビューへ送るイベント名。
const EventMenuZoom = "menu-zoom"

// Command はコンテンツビューへ送るズーム操作。倍率そのものは送らない。
type Command int

const (
    ZoomIn Command = iota
    ZoomOut
    ZoomReset
)

// String はイベントのペイロード（"in" / "out" / "reset"）。
func (c Command) String() string {
    switch c {
    case ZoomIn:
        return "in"
    case ZoomOut:
        return "out"
    case ZoomReset:
        return "reset"
    }
    return ""
}

// commands はメニューID → コマンドの対応表。ここに無いIDは何もしない。
var commands = map[string]Command{
    appmenu.IDZoomIn:     ZoomIn,
    appmenu.IDZoomOut:    ZoomOut,
    appmenu.IDActualSize: ZoomReset,
}

// CommandFor はメニューIDに対応するコマンドを返す。
func CommandFor(id string) (Command, bool) {
    c, ok := commands[id]
    return c, ok
}

// CommandIDs は対応表に載っているIDを固定順で返す。
func CommandIDs() []string {
    return []string{appmenu.IDZoomIn, appmenu.IDZoomOut, appmenu.IDActualSize}
}
