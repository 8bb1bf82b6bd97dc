package pubsub

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)

	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	rooms    []string
	payloads []string
}

func (f *fakeBroadcaster) BroadcastRaw(room string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms = append(f.rooms, room)
	f.payloads = append(f.payloads, string(payload))
	return nil
}

func (f *fakeBroadcaster) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

func TestRedisNotifier_NotifyNewSale(t *testing.T) {
	publisher := &fakePublisher{}
	notifier := NewRedisNotifier(publisher, "sales-analytics:dashboard")

	err := notifier.NotifyNewSale(context.Background(), &domain.SaleDetails{Sale: domain.Sale{ID: "s1"}})

	require.NoError(t, err)
	assert.Equal(t, "sales-analytics:dashboard", publisher.channel)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(publisher.message, &envelope))
	assert.Equal(t, "dashboard", envelope.Room)

	var frame struct {
		Event string `json:"event"`
		Data  struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(envelope.Frame, &frame))
	assert.Equal(t, "newSale", frame.Event)
	assert.Equal(t, "s1", frame.Data.ID)
}

func TestRedisNotifier_PublishError(t *testing.T) {
	notifier := NewRedisNotifier(&fakePublisher{err: errors.New("connection refused")}, "canal")

	err := notifier.NotifyNewSale(context.Background(), &domain.SaleDetails{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "canal")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRelay_DeliversValidEnvelopes(t *testing.T) {
	local := &fakeBroadcaster{}
	messages := make(chan *redis.Message, 3)

	messages <- &redis.Message{Channel: "c", Payload: `{"room":"dashboard","frame":{"event":"newSale","data":{"id":"s1"}}}`}
	messages <- &redis.Message{Channel: "c", Payload: `not-json`}
	messages <- &redis.Message{Channel: "c", Payload: `{"room":"","frame":{}}`}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- relay(ctx, messages, local) }()

	require.Eventually(t, func() bool { return local.count() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []string{"dashboard"}, local.rooms)
	assert.JSONEq(t, `{"event":"newSale","data":{"id":"s1"}}`, local.payloads[0])
}

func TestRelay_StopsWhenChannelCloses(t *testing.T) {
	messages := make(chan *redis.Message)
	close(messages)

	err := relay(context.Background(), messages, &fakeBroadcaster{})

	assert.NoError(t, err)
}
