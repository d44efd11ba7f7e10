package uiloop

import (
    "context"
    "sync"
    "sync/atomic"
    "testing"
    "time"
)

func TestLoop_FIFO(t *testing.T) {
    l := New(16)
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()
    go l.Run(ctx)

    var got []int
    for i := 0; i < 10; i++ {
        i := i
        if !l.Post(func() { got = append(got, i) }) { t.Fatalf("Post(%d) failed", i) }
    }
    // Do は前に積まれたタスクの後に実行される
    if !l.Do(func() {}) { t.Fatalf("Do failed") }
    for i, v := range got {
        if v != i { t.Fatalf("order broken: %v", got) }
    }
    if len(got) != 10 { t.Fatalf("got %d tasks", len(got)) }
}

func TestLoop_SingleOwner(t *testing.T) {
    l := New(4)
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()
    go l.Run(ctx)

    // 複数ゴルーチンから書いても競合しない（-race で確認）
    counter := 0
    var wg sync.WaitGroup
    for i := 0; i < 8; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for j := 0; j < 50; j++ { l.Do(func() { counter++ }) }
        }()
    }
    wg.Wait()
    var final int
    l.Do(func() { final = counter })
    if final != 400 { t.Fatalf("counter=%d", final) }
}

func TestLoop_Stopped(t *testing.T) {
    l := New(1)
    ctx, cancel := context.WithCancel(context.Background())
    go l.Run(ctx)
    cancel()
    select {
    case <-l.Done():
    case <-time.After(time.Second):
        t.Fatalf("loop did not stop")
    }
    if l.Post(func() {}) { t.Fatalf("Post after stop should fail") }
    if l.Do(func() { t.Errorf("must not run") }) { t.Fatalf("Do after stop should fail") }
}

// 停止と競合した Post でも、true を返したタスクは Done までに必ず実行される。
func TestLoop_AcceptedTasksRunAcrossStop(t *testing.T) {
    for round := 0; round < 50; round++ {
        l := New(32)
        ctx, cancel := context.WithCancel(context.Background())
        go l.Run(ctx)

        var accepted, ran atomic.Int64
        var wg sync.WaitGroup
        start := make(chan struct{})
        for i := 0; i < 8; i++ {
            wg.Add(1)
            go func() {
                defer wg.Done()
                <-start
                for j := 0; j < 20; j++ {
                    if l.Post(func() { ran.Add(1) }) { accepted.Add(1) }
                }
            }()
        }
        close(start)
        cancel()
        wg.Wait()

        select {
        case <-l.Done():
        case <-time.After(time.Second):
            t.Fatalf("round %d: loop did not stop", round)
        }
        if a, r := accepted.Load(), ran.Load(); a != r {
            t.Fatalf("round %d: accepted=%d ran=%d", round, a, r)
        }
        if l.Post(func() {}) { t.Fatalf("round %d: Post after stop should fail", round) }
    }
}
