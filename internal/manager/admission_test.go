package manager

import (
	"context"
	"testing"
	"time"
)

func TestBeginGeneration_QueueFull(t *testing.T) {
	m := New(Config{MaxQueueDepth: 1})
	rel, err := m.beginGeneration(context.Background())
	if err != nil {
		t.Fatalf("beginGeneration first: %v", err)
	}
	defer rel()
	if _, err := m.beginGeneration(context.Background()); !IsTooBusy(err) {
		t.Fatalf("expected tooBusyError, got %v", err)
	}
}

func TestBeginGeneration_WaitTimeout(t *testing.T) {
	m := New(Config{MaxQueueDepth: 2, MaxWait: 20 * time.Millisecond})
	m.genCh <- struct{}{}
	if _, err := m.beginGeneration(context.Background()); !IsTooBusy(err) {
		t.Fatalf("expected tooBusyError on gen wait, got %v", err)
	}
	if len(m.queueCh) != 0 {
		t.Fatalf("queue slot leaked")
	}
}

func TestBeginGeneration_NoMaxWaitBlocksUntilContextDone(t *testing.T) {
	m := New(Config{MaxQueueDepth: 2})
	m.genCh <- struct{}{}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := m.beginGeneration(ctx)
	if err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestBeginGeneration_Canceled(t *testing.T) {
	m := New(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.beginGeneration(ctx); err != context.Canceled {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestBeginGeneration_ReleaseFreesSlots(t *testing.T) {
	m := New(Config{MaxQueueDepth: 1})
	rel, err := m.beginGeneration(context.Background())
	if err != nil {
		t.Fatalf("beginGeneration: %v", err)
	}
	rel()
	rel2, err := m.beginGeneration(context.Background())
	if err != nil {
		t.Fatalf("second beginGeneration: %v", err)
	}
	rel2()
}
