// Package uiloop は UI オブジェクト（メニューツリー）を単一のゴルーチンに所有させるための
// タスクキュー。メニュークリックとコンテンツビューからの呼び出しはどちらもここに Post され、
// Post に到着した順に1つずつ実行される。
package uiloop

import (
    "context"
    "sync"
)

type Loop struct {
    tasks    chan func()
    stopping chan struct{} // 停止開始。以降の Post は false
    done     chan struct{} // 受理済みタスクを全て実行し終えた

    mu       sync.Mutex
    stopped  bool
    inflight sync.WaitGroup
}

func New(buffer int) *Loop {
    if buffer < 1 { buffer = 1 }
    return &Loop{
        tasks:    make(chan func(), buffer),
        stopping: make(chan struct{}),
        done:     make(chan struct{}),
    }
}

// Run は ctx がキャンセルされるまでタスクを処理する。1つの Loop につき1回だけ呼ぶ。
// 停止時は、Post が true を返したタスクを全て実行してから Done を close する。
func (l *Loop) Run(ctx context.Context) {
    for {
        select {
        case <-ctx.Done():
            l.stop()
            return
        case fn := <-l.tasks:
            fn()
        }
    }
}

func (l *Loop) stop() {
    l.mu.Lock()
    l.stopped = true
    l.mu.Unlock()
    close(l.stopping)
    // 送信途中の Post を待ってから残りを実行する
    l.inflight.Wait()
    for {
        select {
        case fn := <-l.tasks:
            fn()
        default:
            close(l.done)
            return
        }
    }
}

// Post は fn をキューに積む。true を返したタスクは必ず実行される。停止済みなら false。
func (l *Loop) Post(fn func()) bool {
    l.mu.Lock()
    if l.stopped {
        l.mu.Unlock()
        return false
    }
    l.inflight.Add(1)
    l.mu.Unlock()
    defer l.inflight.Done()

    select {
    case l.tasks <- fn:
        return true
    case <-l.stopping:
        return false
    }
}

// Do は fn をループ上で実行し、完了するまで待つ。実行されなかった場合は false。
func (l *Loop) Do(fn func()) bool {
    finished := make(chan struct{})
    if !l.Post(func() { defer close(finished); fn() }) {
        return false
    }
    // 受理されたタスクは停止時にも実行されるので必ず閉じる
    <-finished
    return true
}

// Done はループ停止後（残タスク実行後）に close されるチャネル。
func (l *Loop) Done() <-chan struct{} { return l.done }
