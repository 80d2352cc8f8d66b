package realtime

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce sync.Once
	redisAddr string
	redisErr  error
)

// setupRedis starts one Redis container per test run. Skipped under -short.
func setupRedis(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis test in -short mode")
	}

	redisOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			redisErr = fmt.Errorf("start container: %w", err)
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			redisErr = fmt.Errorf("get container host: %w", err)
			return
		}
		port, err := container.MappedPort(ctx, "6379")
		if err != nil {
			redisErr = fmt.Errorf("get mapped port: %w", err)
			return
		}
		redisAddr = fmt.Sprintf("%s:%s", host, port.Port())
	})
	if redisErr != nil {
		t.Fatalf("failed to setup redis: %v", redisErr)
	}
	return redisAddr
}

func newRedisBroker(t *testing.T) *RedisBroker {
	t.Helper()
	addr := setupRedis(t)

	b, err := NewRedisBroker(context.Background(), RedisOptions{
		Addr:   addr,
		Prefix: "test:" + t.Name() + ":",
		Buffer: 4,
	}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestRedisBroker_PublishSubscribe(t *testing.T) {
	t.Parallel()
	b := newRedisBroker(t)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "alice")
	require.NoError(t, err)
	defer sub.Close()

	m := msgFor("alice", "keep going")
	require.NoError(t, b.Publish(ctx, m))

	got := receive(t, sub)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "keep going", got.Message)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
}

func TestRedisBroker_IsolatesRecipients(t *testing.T) {
	t.Parallel()
	b := newRedisBroker(t)
	ctx := context.Background()

	bob, err := b.Subscribe(ctx, "bob")
	require.NoError(t, err)
	defer bob.Close()

	require.NoError(t, b.Publish(ctx, msgFor("alice", "not for bob")))
	require.NoError(t, b.Publish(ctx, msgFor("bob", "for bob")))

	assert.Equal(t, "for bob", receive(t, bob).Message)
}

func TestRedisBroker_CloseEndsSubscription(t *testing.T) {
	t.Parallel()
	b := newRedisBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := b.Subscribe(ctx, "alice")
	require.NoError(t, err)

	cancel()
	assertClosed(t, sub)
	assert.NoError(t, b.Ping(context.Background()))
}

func TestNewRedisBroker_EmptyAddr(t *testing.T) {
	t.Parallel()
	_, err := NewRedisBroker(context.Background(), RedisOptions{}, testLogger())
	assert.Error(t, err)
}
