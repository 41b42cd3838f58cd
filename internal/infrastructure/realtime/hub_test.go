package realtime

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

func fixedSnapshot(items []domain.AdahiSubmission) SnapshotFunc {
	return func(context.Context) ([]domain.AdahiSubmission, error) {
		return items, nil
	}
}

func testSubmissions() []domain.AdahiSubmission {
	return []domain.AdahiSubmission{
		{ID: "s1", UserID: "u1", DonorName: "Ahmad"},
		{ID: "s2", UserID: "u2", DonorName: "Omar"},
		{ID: "s3", UserID: "u1", DonorName: "Ahmad"},
	}
}

func TestHub_BroadcastFiltersPerSubscriber(t *testing.T) {
	hub := NewHub(fixedSnapshot(testSubmissions()), zerolog.Nop())

	adminCh, disposeAdmin := hub.Subscribe("a1", true)
	defer disposeAdmin()
	ownCh, disposeOwn := hub.Subscribe("u1", false)
	defer disposeOwn()

	hub.Broadcast(context.Background())

	adminView := <-adminCh
	if len(adminView) != 3 {
		t.Fatalf("admin expected full set, got %d", len(adminView))
	}

	ownView := <-ownCh
	if len(ownView) != 2 {
		t.Fatalf("owner expected 2 submissions, got %d", len(ownView))
	}
	for _, s := range ownView {
		if s.UserID != "u1" {
			t.Fatalf("owner view leaked submission of %s", s.UserID)
		}
	}
}

func TestHub_DisposeRemovesSubscriber(t *testing.T) {
	hub := NewHub(fixedSnapshot(testSubmissions()), zerolog.Nop())

	ch, dispose := hub.Subscribe("u1", false)
	if hub.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.Subscribers())
	}

	dispose()
	if hub.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers after dispose, got %d", hub.Subscribers())
	}
	if _, ok := <-ch; ok {
		t.Fatalf("channel must be closed after dispose")
	}

	// idempotent
	dispose()

	hub.Broadcast(context.Background())
}

func TestHub_LatestWins(t *testing.T) {
	items := testSubmissions()
	hub := NewHub(func(context.Context) ([]domain.AdahiSubmission, error) {
		return items, nil
	}, zerolog.Nop())

	ch, dispose := hub.Subscribe("a1", true)
	defer dispose()

	// two broadcasts without a read in between: only the newest survives
	hub.Broadcast(context.Background())
	items = items[:1]
	hub.Broadcast(context.Background())

	view := <-ch
	if len(view) != 1 {
		t.Fatalf("expected latest snapshot of 1, got %d", len(view))
	}

	select {
	case stale := <-ch:
		t.Fatalf("unexpected second snapshot with %d items", len(stale))
	default:
	}
}

func TestHub_SnapshotFailureKeepsState(t *testing.T) {
	fail := false
	hub := NewHub(func(context.Context) ([]domain.AdahiSubmission, error) {
		if fail {
			return nil, errors.New("store unavailable")
		}
		return testSubmissions(), nil
	}, zerolog.Nop())

	ch, dispose := hub.Subscribe("a1", true)
	defer dispose()

	hub.Broadcast(context.Background())
	if view := <-ch; len(view) != 3 {
		t.Fatalf("expected 3, got %d", len(view))
	}

	fail = true
	hub.Broadcast(context.Background())

	// no push on failure, previous state stands
	select {
	case view := <-ch:
		t.Fatalf("unexpected push after failed snapshot: %d items", len(view))
	default:
	}
}

func TestHub_Current(t *testing.T) {
	hub := NewHub(fixedSnapshot(testSubmissions()), zerolog.Nop())

	all, err := hub.Current(context.Background(), "a1", true)
	if err != nil || len(all) != 3 {
		t.Fatalf("admin current: got %d, err %v", len(all), err)
	}

	own, err := hub.Current(context.Background(), "u2", false)
	if err != nil || len(own) != 1 {
		t.Fatalf("owner current: got %d, err %v", len(own), err)
	}
}
