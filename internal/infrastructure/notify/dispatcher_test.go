package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

type stubSender struct {
	mu   sync.Mutex
	sent []ports.DonorNotification
	done chan struct{}
}

func newStubSender() *stubSender {
	return &stubSender{done: make(chan struct{}, 16)}
}

func (s *stubSender) Send(_ context.Context, n ports.DonorNotification) error {
	s.mu.Lock()
	s.sent = append(s.sent, n)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *stubSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type stubDedup struct {
	mu     sync.Mutex
	marked map[string]bool
	seen   chan struct{}
}

func newStubDedup() *stubDedup {
	return &stubDedup{marked: make(map[string]bool), seen: make(chan struct{}, 16)}
}

func (d *stubDedup) AlreadySent(_ context.Context, submissionID, stage string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sent := d.marked[submissionID+":"+stage]
	if sent {
		d.seen <- struct{}{}
	}
	return sent, nil
}

func (d *stubDedup) Mark(_ context.Context, submissionID, stage string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.marked[submissionID+":"+stage] = true
	return nil
}

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestDispatcher_DeliversAndMarks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newStubSender()
	dedup := newStubDedup()
	d := NewDispatcher(2, sender, dedup, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.DonorNotification{
		SubmissionID: "sub-1",
		Email:        "donor@example.com",
		DonorName:    "Ahmad",
		Stage:        domain.SlaughterNotified,
	})

	waitSignal(t, sender.done, "delivery")

	if sender.sentCount() != 1 {
		t.Fatalf("expected 1 delivery, got %d", sender.sentCount())
	}
	sender.mu.Lock()
	got := sender.sent[0]
	sender.mu.Unlock()
	if got.Email != "donor@example.com" || got.Stage != domain.SlaughterNotified {
		t.Fatalf("unexpected delivery: %+v", got)
	}

	dedup.mu.Lock()
	marked := dedup.marked["sub-1:"+string(domain.SlaughterNotified)]
	dedup.mu.Unlock()
	if !marked {
		t.Fatalf("expected dedup key to be set after delivery")
	}
}

func TestDispatcher_SkipsDuplicates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newStubSender()
	dedup := newStubDedup()
	d := NewDispatcher(1, sender, dedup, zerolog.Nop())
	d.Start(ctx)

	job := ports.DonorNotification{
		SubmissionID: "sub-1",
		Email:        "donor@example.com",
		Stage:        domain.SlaughterNotified,
	}

	d.Enqueue(job)
	waitSignal(t, sender.done, "first delivery")

	d.Enqueue(job)
	waitSignal(t, dedup.seen, "duplicate check")

	if sender.sentCount() != 1 {
		t.Fatalf("duplicate was delivered, got %d sends", sender.sentCount())
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newStubSender(), newStubDedup(), zerolog.Nop())

	first := d.shardIndex("sub-abc")
	for i := 0; i < 10; i++ {
		if d.shardIndex("sub-abc") != first {
			t.Fatalf("shard index not stable for same submission id")
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index %d out of range", first)
	}
}
