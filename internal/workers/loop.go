package workers

import (
	"context"
	"sync"
)

// loop owns the goroutine of a single job. Starting a running loop restarts
// it.
type loop struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (l *loop) start(ctx context.Context, body func(ctx context.Context)) {
	l.stop()

	l.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		body(jobCtx)
	}()
}

func (l *loop) stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}
