package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	calls []published
	err   error
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls = append(f.calls, published{exchange: exchange, key: key, msg: msg})
	return f.err
}

type testEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewChannelPublisher(ch, "tracker.events")

	err := p.Publish(context.Background(), "user.registered", testEvent{ID: "1", Name: "alice"})
	require.NoError(t, err)

	require.Len(t, ch.calls, 1)
	assert.Equal(t, "tracker.events", ch.calls[0].exchange)
	assert.Equal(t, "user.registered", ch.calls[0].key)
	assert.Equal(t, "application/json", ch.calls[0].msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.calls[0].msg.DeliveryMode)

	var got testEvent
	require.NoError(t, json.Unmarshal(ch.calls[0].msg.Body, &got))
	assert.Equal(t, testEvent{ID: "1", Name: "alice"}, got)
}

func TestPublisher_ChannelError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := NewChannelPublisher(ch, "tracker.events")

	err := p.Publish(context.Background(), "exercise.added", testEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestPublisher_CanceledContext(t *testing.T) {
	ch := &fakeChannel{}
	p := NewChannelPublisher(ch, "tracker.events")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, "exercise.added", testEvent{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ch.calls)
}

func TestPublishMessage_MarshalError(t *testing.T) {
	err := PublishMessage(&fakeChannel{}, "x", "y", make(chan int))
	assert.Error(t, err)
}

func TestPublisher_RabbitMQ(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp"},
		WaitingFor: wait.ForListeningPort("5672/tcp").
			WithStartupTimeout(2 * time.Minute),
	}
	rmqContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() {
		if err := rmqContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	}()

	host, err := rmqContainer.Host(ctx)
	require.NoError(t, err)
	port, err := rmqContainer.MappedPort(ctx, "5672")
	require.NoError(t, err)

	conn, err := Connect(fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), 10, time.Second)
	require.NoError(t, err)

	p, err := NewPublisher(conn, "tracker.events")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	consumerConn, err := Connect(fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), 3, time.Second)
	require.NoError(t, err)
	defer func() { _ = consumerConn.Close() }()
	ch, err := consumerConn.Channel()
	require.NoError(t, err)

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "exercise.*", "tracker.events", false, nil))
	deliveries, err := ch.Consume(q.Name, "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	require.NoError(t, p.Publish(ctx, "exercise.added", testEvent{ID: "7", Name: "run"}))

	select {
	case d := <-deliveries:
		var got testEvent
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, "7", got.ID)
		assert.Equal(t, "exercise.added", d.RoutingKey)
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}
