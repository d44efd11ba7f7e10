package config

import (
    "context"
    "path/filepath"

    "github.com/fsnotify/fsnotify"
)

// Watch は設定ファイルの変更を監視し、読み直せたら fn に渡す。
// エディタの「一時ファイル → rename」保存にも追従するためディレクトリごと監視する。
// ctx がキャンセルされると監視を終了する。読み込みエラーは onErr に渡す（nil なら無視）。
func Watch(ctx context.Context, path string, fn func(*Config), onErr func(error)) error {
    w, err := fsnotify.NewWatcher()
    if err != nil { return err }
    if err := w.Add(filepath.Dir(path)); err != nil {
        _ = w.Close()
        return err
    }
    target := filepath.Clean(path)
    report := func(err error) { if onErr != nil { onErr(err) } }

    go func() {
        defer w.Close()
        for {
            select {
            case <-ctx.Done():
                return
            case ev, ok := <-w.Events:
                if !ok { return }
                if filepath.Clean(ev.Name) != target { continue }
                if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 { continue }
                c, err := LoadFrom(target)
                if err != nil {
                    // 書き込み途中の場合もあるので次のイベントを待つ
                    report(err)
                    continue
                }
                fn(c)
            case err, ok := <-w.Errors:
                if !ok { return }
                report(err)
            }
        }
    }()
    return nil
}
