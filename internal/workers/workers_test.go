// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingWorker struct {
	id    int
	calls *[]string
}

func (w *recordingWorker) Start(context.Context) {
	*w.calls = append(*w.calls, "start", string(rune('0'+w.id)))
}

func (w *recordingWorker) Stop() {
	*w.calls = append(*w.calls, "stop", string(rune('0'+w.id)))
}

func TestWorkers_StartForwardStopReverse(t *testing.T) {
	var calls []string
	ws := NewWorkers(
		&recordingWorker{id: 1, calls: &calls},
		&recordingWorker{id: 2, calls: &calls},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, calls)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestLoop_StopWithoutStart(t *testing.T) {
	var l loop
	assert.NotPanics(t, l.stop)
}

func TestLoop_RestartStopsPrevious(t *testing.T) {
	var l loop
	firstDone := make(chan struct{})

	l.start(context.Background(), func(ctx context.Context) {
		<-ctx.Done()
		close(firstDone)
	})
	l.start(context.Background(), func(ctx context.Context) {
		<-ctx.Done()
	})

	select {
	case <-firstDone:
	default:
		t.Fatal("first body still running after restart")
	}
	l.stop()
}
