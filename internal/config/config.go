package config

import (
    "encoding/json"
    "errors"
    "os"
    "path/filepath"
)

// Config は GUI の永続設定です。ズーム倍率はコンテンツビュー側が持つのでここには保存しません。
type Config struct {
    // ウィンドウ
    Window WindowConfig `json:"window"`
    // ログ
    Log LogConfig `json:"log"`
}

type WindowConfig struct {
    Title  string `json:"title"`
    Width  int    `json:"width"`
    Height int    `json:"height"`
}

type LogConfig struct {
    Level string `json:"level"` // trace|debug|info|warning|error
    File  string `json:"file"`  // 空なら stderr
}

func Default() *Config {
    return &Config{
        Window: WindowConfig{Title: "zoomshell", Width: 1100, Height: 760},
        Log:    LogConfig{Level: "info", File: ""},
    }
}

// 足りない値を既定値で埋める
func (c *Config) fill() {
    d := Default()
    if c.Window.Title == "" { c.Window.Title = d.Window.Title }
    if c.Window.Width <= 0 { c.Window.Width = d.Window.Width }
    if c.Window.Height <= 0 { c.Window.Height = d.Window.Height }
    if c.Log.Level == "" { c.Log.Level = d.Log.Level }
}

// Path は保存先パス（OS毎の規定の設定ディレクトリ配下）
func Path() (string, error) {
    dir, err := os.UserConfigDir()
    if err != nil { return "", err }
    d := filepath.Join(dir, "zoomshell")
    if err := os.MkdirAll(d, 0o755); err != nil { return "", err }
    return filepath.Join(d, "config.json"), nil
}

// Load は設定を読み込みます。無い場合は (nil, os.ErrNotExist) を返します。
func Load() (*Config, error) {
    p, err := Path()
    if err != nil { return nil, err }
    return LoadFrom(p)
}

// LoadFrom は指定パスから読み込みます。
func LoadFrom(p string) (*Config, error) {
    bt, err := os.ReadFile(p)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) { return nil, os.ErrNotExist }
        return nil, err
    }
    var c Config
    if err := json.Unmarshal(bt, &c); err != nil { return nil, err }
    c.fill()
    return &c, nil
}

// Save は設定を保存します。
func Save(c *Config) error {
    p, err := Path()
    if err != nil { return err }
    return SaveTo(p, c)
}

func SaveTo(p string, c *Config) error {
    if c == nil { return errors.New("nil config") }
    bt, err := json.MarshalIndent(c, "", "  ")
    if err != nil { return err }
    return os.WriteFile(p, bt, 0o600)
}
