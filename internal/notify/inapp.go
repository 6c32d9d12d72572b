package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"talent-bank/internal/storage"
	"talent-bank/pkg/logging"
)

type NotificationStore interface {
	InsertNotification(ctx context.Context, n *storage.Notification) error
}

// Publisher pushes a stored notification to live listeners.
type Publisher interface {
	Publish(ctx context.Context, n *storage.Notification) error
}

// InApp persists notifications and then announces them on the publisher, if
// one is configured. Only the insert decides success.
type InApp struct {
	store     NotificationStore
	publisher Publisher
	log       *logging.Logger
}

func NewInApp(store NotificationStore, publisher Publisher, log *logging.Logger) *InApp {
	return &InApp{store: store, publisher: publisher, log: log.With("component", "in-app")}
}

func (a *InApp) Notify(ctx context.Context, n *storage.Notification) error {
	if err := a.store.InsertNotification(ctx, n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	if a.publisher != nil {
		if err := a.publisher.Publish(ctx, n); err != nil {
			a.log.Warn("publish notification", "notification_id", n.ID.String(), "err", err)
		}
	}
	return nil
}

// RedisPublisher broadcasts notifications on a Redis pub/sub channel, which
// the candidate-facing app turns into live badges.
type RedisPublisher struct {
	rdb     *goredis.Client
	channel string
}

func NewRedisPublisher(addr, channel string) (*RedisPublisher, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	if channel == "" {
		channel = "talent-bank.notifications"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisPublisher{rdb: rdb, channel: channel}, nil
}

type liveMessage struct {
	Event        string                `json:"event"`
	Notification *storage.Notification `json:"notification"`
}

func (p *RedisPublisher) Publish(ctx context.Context, n *storage.Notification) error {
	raw, err := json.Marshal(liveMessage{Event: "notification.created", Notification: n})
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, raw).Err()
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
