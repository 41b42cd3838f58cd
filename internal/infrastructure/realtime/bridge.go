package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Channel is the redis pub/sub channel carrying change signals. The payload
// is irrelevant; every message means "re-query and push".
const Channel = "adahi.submissions.changed"

// Publisher signals submission changes through redis so every instance's hub
// rebroadcasts, not just the one that handled the write.
type Publisher struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewPublisher(client *redis.Client, log zerolog.Logger) *Publisher {
	return &Publisher{client: client, log: log}
}

// Notify implements ports.ChangeNotifier. A failed publish is logged and
// swallowed: the write that triggered it has already succeeded.
func (p *Publisher) Notify(ctx context.Context) {
	if err := p.client.Publish(ctx, Channel, "1").Err(); err != nil {
		p.log.Warn().Err(err).Msg("failed to publish change signal")
	}
}

// Bridge consumes the change channel and triggers hub broadcasts.
type Bridge struct {
	client *redis.Client
	hub    *Hub
	log    zerolog.Logger
}

func NewBridge(client *redis.Client, hub *Hub, log zerolog.Logger) *Bridge {
	return &Bridge{client: client, hub: hub, log: log}
}

// Run blocks consuming change signals until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	pubsub := b.client.Subscribe(ctx, Channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			b.hub.Broadcast(ctx)
		}
	}
}
