package reminder

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingSweeper struct {
	runs int32
}

func (s *countingSweeper) Execute(context.Context) (int, error) {
	atomic.AddInt32(&s.runs, 1)
	return 0, nil
}

func TestWorker_RunsUntilCancelled(t *testing.T) {
	s := &countingSweeper{}
	w := NewWorker(s, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	if atomic.LoadInt32(&s.runs) < 2 {
		t.Errorf("expected several sweeps, got %d", s.runs)
	}
}
