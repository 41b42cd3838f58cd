// Package realtime implements the change-subscription fan-out behind the
// watch endpoint. Subscribing returns a channel of result-set snapshots plus
// a disposer; every store change triggers one snapshot query whose rows are
// then filtered per subscriber (admins see all submissions, donors only
// their own).
package realtime

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

// SnapshotFunc fetches the full current submission set, newest first.
type SnapshotFunc func(ctx context.Context) ([]domain.AdahiSubmission, error)

type subscriber struct {
	userID string
	admin  bool
	ch     chan []domain.AdahiSubmission
}

// Hub fans submission snapshots out to watch subscribers. Channels are
// buffered with latest-wins delivery: a slow consumer sees the newest
// snapshot, never a backlog.
type Hub struct {
	mu       sync.Mutex
	subs     map[int]*subscriber
	nextID   int
	snapshot SnapshotFunc
	log      zerolog.Logger
}

func NewHub(snapshot SnapshotFunc, log zerolog.Logger) *Hub {
	return &Hub{
		subs:     make(map[int]*subscriber),
		snapshot: snapshot,
		log:      log,
	}
}

// Subscribe registers a consumer and returns its snapshot channel together
// with a disposer. The disposer is idempotent and must be called before the
// consumer goes away; it closes the channel.
func (h *Hub) Subscribe(userID string, admin bool) (<-chan []domain.AdahiSubmission, func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	sub := &subscriber{
		userID: userID,
		admin:  admin,
		ch:     make(chan []domain.AdahiSubmission, 1),
	}
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	dispose := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, dispose
}

// Current queries the snapshot and returns the given consumer's view of it,
// used for the initial push when a watch stream opens.
func (h *Hub) Current(ctx context.Context, userID string, admin bool) ([]domain.AdahiSubmission, error) {
	all, err := h.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if admin {
		return all, nil
	}
	return filterByOwner(all, userID), nil
}

// Subscribers returns the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Broadcast queries one snapshot and pushes each subscriber its view of it.
// On a failed query the subscribers keep their previously pushed state; the
// error is logged and nothing is cleared.
func (h *Hub) Broadcast(ctx context.Context) {
	all, err := h.snapshot(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("snapshot query failed, keeping previous state")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		view := all
		if !sub.admin {
			view = filterByOwner(all, sub.userID)
		}
		// latest wins: drop the stale pending snapshot before sending
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- view:
		default:
		}
	}
}

func filterByOwner(all []domain.AdahiSubmission, userID string) []domain.AdahiSubmission {
	own := make([]domain.AdahiSubmission, 0)
	for _, s := range all {
		if s.UserID == userID {
			own = append(own, s)
		}
	}
	return own
}
