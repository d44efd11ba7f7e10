package main

import (
    "fmt"
    "io"
    "strings"

    "zoomshell/internal/appmenu"

    "github.com/charmbracelet/lipgloss"
    "github.com/charmbracelet/lipgloss/tree"
)

var (
    idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
    accelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
    enumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
)

var roleNames = map[appmenu.Role]string{
    appmenu.RoleApp:    "(app menu)",
    appmenu.RoleEdit:   "(edit menu)",
    appmenu.RoleWindow: "(window menu)",
}

// describe は1項目を "Label [id] kind accel" の形にする。
func describe(e *appmenu.Entry) string {
    if e.Kind == appmenu.Separator { return "────" }
    label := e.Label
    if e.Role != appmenu.RoleNone { label = roleNames[e.Role] }
    parts := []string{label}
    if e.ID != "" { parts = append(parts, idStyle.Render("["+e.ID+"]")) }
    parts = append(parts, e.Kind.String())
    if a := e.AcceleratorString(); a != "" { parts = append(parts, accelStyle.Render(a)) }
    if e.Kind == appmenu.ActionItem && !e.Enabled { parts = append(parts, "disabled") }
    return strings.Join(parts, " ")
}

func node(e *appmenu.Entry) any {
    if len(e.Children) == 0 { return describe(e) }
    sub := tree.Root(describe(e))
    for _, c := range e.Children { sub.Child(node(c)) }
    return sub
}

// renderTree は lipgloss の tree でメニュー全体を描画する。
func renderTree(t *appmenu.Tree) string {
    root := tree.Root("menu").
        Enumerator(tree.RoundedEnumerator).
        EnumeratorStyle(enumStyle)
    for _, e := range t.Roots() { root.Child(node(e)) }
    return root.String()
}

func writePlain(w io.Writer, t *appmenu.Tree) {
    t.Walk(func(e *appmenu.Entry, depth int) {
        fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(e))
    })
}
