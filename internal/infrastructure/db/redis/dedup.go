package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 72 * time.Hour

// NotificationDedup guards against notifying the same donor twice for the
// same submission stage. Key format: notify:<submission_id>:<stage>
type NotificationDedup struct {
	client *redis.Client
}

// NewNotificationDedup creates a NotificationDedup wrapping the given client.
func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

// AlreadySent reports whether a notification for this submission and stage
// has already gone out.
func (d *NotificationDedup) AlreadySent(ctx context.Context, submissionID, stage string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(submissionID, stage)).Result()
	if err != nil {
		return false, fmt.Errorf("notification dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the notification was sent (expires after dedupTTL).
func (d *NotificationDedup) Mark(ctx context.Context, submissionID, stage string) error {
	return d.client.Set(ctx, d.key(submissionID, stage), "1", dedupTTL).Err()
}

func (d *NotificationDedup) key(submissionID, stage string) string {
	return fmt.Sprintf("notify:%s:%s", submissionID, stage)
}
