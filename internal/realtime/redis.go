package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// RedisBroker fans messages out through Redis pub/sub so that every server
// instance sees every insertion. Each recipient has its own channel.
type RedisBroker struct {
	client *redis.Client
	prefix string
	buffer int
	log    *slog.Logger
}

// RedisOptions configures NewRedisBroker.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	Buffer   int
}

type wireMessage struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRedisBroker connects to Redis and verifies the connection with PING.
func NewRedisBroker(ctx context.Context, opts RedisOptions, logger *slog.Logger) (*RedisBroker, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("realtime: empty redis addr")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("realtime: ping redis: %w", err)
	}

	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = 1
	}

	return &RedisBroker{
		client: client,
		prefix: opts.Prefix,
		buffer: buffer,
		log:    logger.With("component", "realtime.redis"),
	}, nil
}

func (b *RedisBroker) channel(username string) string {
	return b.prefix + username
}

// Ping checks the Redis connection.
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Publish sends m on the recipient's channel.
func (b *RedisBroker) Publish(ctx context.Context, m domain.Message) error {
	payload, err := json.Marshal(wireMessage{
		ID:        m.ID,
		Username:  m.Username,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("realtime: encode message: %w", err)
	}

	if err := b.client.Publish(ctx, b.channel(m.Username), payload).Err(); err != nil {
		return fmt.Errorf("realtime: publish: %w", err)
	}
	return nil
}

// Subscribe opens a pub/sub connection for username. It returns only after
// Redis has confirmed the subscription, so nothing published afterwards is missed.
func (b *RedisBroker) Subscribe(ctx context.Context, username string) (Subscription, error) {
	ps := b.client.Subscribe(ctx, b.channel(username))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("realtime: subscribe %s: %w", username, err)
	}

	s := &redisSub{
		ps:   ps,
		ch:   make(chan domain.Message, b.buffer),
		done: make(chan struct{}),
	}
	go s.pump(b.log)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-s.done:
		}
	}()

	return s, nil
}

// Close releases the Redis client.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

type redisSub struct {
	ps   *redis.PubSub
	ch   chan domain.Message
	done chan struct{}
	once sync.Once
}

func (s *redisSub) Events() <-chan domain.Message { return s.ch }

func (s *redisSub) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}

func (s *redisSub) pump(log *slog.Logger) {
	defer close(s.ch)

	in := s.ps.Channel()
	for {
		select {
		case <-s.done:
			return
		case raw, ok := <-in:
			if !ok {
				return
			}

			var w wireMessage
			if err := json.Unmarshal([]byte(raw.Payload), &w); err != nil {
				log.Warn("discarding undecodable event",
					slog.String("channel", raw.Channel),
					slog.String("error", err.Error()),
				)
				continue
			}

			m := domain.Message{ID: w.ID, Username: w.Username, Message: w.Message, CreatedAt: w.CreatedAt}
			select {
			case s.ch <- m:
			case <-s.done:
				return
			default:
				log.Warn("subscriber queue full, event dropped",
					slog.String("username", m.Username),
					slog.String("message_id", m.ID.String()),
				)
			}
		}
	}
}
