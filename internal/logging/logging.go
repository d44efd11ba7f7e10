// Package logging はアプリ全体で共有するレベル付きロガー。
// Wails の logger.Logger を満たすので options.App.Logger にもそのまま渡せる。
package logging

import (
    "fmt"
    "io"
    "log"
    "os"
    "path/filepath"
    "strings"
    "sync"

    "github.com/wailsapp/wails/v2/pkg/logger"
)

type Logger struct {
    mu    sync.Mutex
    level logger.LogLevel
    out   *log.Logger
    file  *os.File
}

var _ logger.Logger = (*Logger)(nil)

// New は w に書き出すロガーを作る。w が nil なら stderr。
func New(w io.Writer, level logger.LogLevel) *Logger {
    if w == nil { w = os.Stderr }
    return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// ParseLevel は "trace|debug|info|warning|error" を解釈する。空文字や不正値は INFO。
func ParseLevel(s string) logger.LogLevel {
    s = strings.ToLower(strings.TrimSpace(s))
    if s == "" { return logger.INFO }
    lv, err := logger.StringToLogLevel(s)
    if err != nil { return logger.INFO }
    return lv
}

func (l *Logger) SetLevel(level logger.LogLevel) {
    l.mu.Lock()
    l.level = level
    l.mu.Unlock()
}

func (l *Logger) Level() logger.LogLevel {
    l.mu.Lock()
    defer l.mu.Unlock()
    return l.level
}

// Configure は出力先をファイルに切り替える。空文字なら stderr に戻す。
// ディレクトリが無ければ作成する。
func (l *Logger) Configure(path string) error {
    path = strings.TrimSpace(path)
    l.mu.Lock()
    defer l.mu.Unlock()
    if l.file != nil {
        _ = l.file.Close()
        l.file = nil
    }
    if path == "" {
        l.out.SetOutput(os.Stderr)
        return nil
    }
    if dir := filepath.Dir(path); dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil { return fmt.Errorf("ログディレクトリの作成に失敗: %w", err) }
    }
    f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
    if err != nil { return fmt.Errorf("ログファイルを開けません: %w", err) }
    l.file = f
    l.out.SetOutput(f)
    return nil
}

func (l *Logger) Close() error {
    l.mu.Lock()
    defer l.mu.Unlock()
    if l.file == nil { return nil }
    err := l.file.Close()
    l.file = nil
    l.out.SetOutput(os.Stderr)
    return err
}

func (l *Logger) write(level logger.LogLevel, tag, msg string) {
    l.mu.Lock()
    defer l.mu.Unlock()
    if level < l.level { return }
    l.out.Printf("[%s] %s", tag, msg)
}

func (l *Logger) Print(message string) {
    l.mu.Lock()
    defer l.mu.Unlock()
    l.out.Print(message)
}

func (l *Logger) Trace(message string)   { l.write(logger.TRACE, "trace", message) }
func (l *Logger) Debug(message string)   { l.write(logger.DEBUG, "debug", message) }
func (l *Logger) Info(message string)    { l.write(logger.INFO, "info", message) }
func (l *Logger) Warning(message string) { l.write(logger.WARNING, "warning", message) }
func (l *Logger) Error(message string)   { l.write(logger.ERROR, "error", message) }

// Fatal はログを出してプロセスを終了する。
func (l *Logger) Fatal(message string) {
    l.write(logger.ERROR, "fatal", message)
    os.Exit(1)
}

func (l *Logger) Tracef(format string, args ...any) { l.Trace(fmt.Sprintf(format, args...)) }
func (l *Logger) Debugf(format string, args ...any) { l.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }

// Discard はテスト用の何も出力しないロガー。
func Discard() *Logger { return New(io.Discard, logger.ERROR) }
