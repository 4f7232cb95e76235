//go:build unit

package queue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu      sync.Mutex
	msgs    []kafka.Message
	commits []int64
	closed  bool
}

func (f *fakeSource) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if len(f.msgs) == 0 {
		f.mu.Unlock()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	f.mu.Unlock()
	return m, nil
}

func (f *fakeSource) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.commits = append(f.commits, m.Offset)
	}
	return nil
}

func (f *fakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSource) committed() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.commits...)
}

func testConsumer(src messageSource) *Consumer {
	return &Consumer{
		src:     src,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		backoff: time.Millisecond,
	}
}

func envelopeMessage(t *testing.T, offset int64, taskType string) kafka.Message {
	t.Helper()
	env, err := NewEnvelope(taskType, map[string]string{"title": "Vintage Camera"})
	require.NoError(t, err)
	body, err := json.Marshal(env)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Value: body}
}

func TestConsumer_RetriesFailedTaskBeforeCommitting(t *testing.T) {
	src := &fakeSource{msgs: []kafka.Message{envelopeMessage(t, 7, TaskAuctionWon)}}
	ctx, cancel := context.WithCancel(context.Background())

	var attempts int
	processed := make(chan struct{})
	h := func(_ context.Context, env Envelope) error {
		attempts++
		if attempts < 3 {
			return errors.New("smtp unavailable")
		}
		close(processed)
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- testConsumer(src).Start(ctx, h) }()

	select {
	case <-processed:
	case <-time.After(time.Second):
		t.Fatal("task was not retried to success")
	}
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, 3, attempts, "same task must be retried, not skipped")
	assert.Equal(t, []int64{7}, src.committed(), "offset commits only after the handler succeeds")
	assert.True(t, src.closed)
}

func TestConsumer_FailingTaskIsNeverCommitted(t *testing.T) {
	src := &fakeSource{msgs: []kafka.Message{envelopeMessage(t, 3, TaskAuctionExpired)}}
	ctx, cancel := context.WithCancel(context.Background())

	attempted := make(chan struct{}, 16)
	h := func(context.Context, Envelope) error {
		select {
		case attempted <- struct{}{}:
		default:
		}
		return errors.New("smtp unavailable")
	}

	done := make(chan error, 1)
	go func() { done <- testConsumer(src).Start(ctx, h) }()

	<-attempted
	<-attempted // at least one retry of the same message happened
	cancel()
	require.NoError(t, <-done)

	assert.Empty(t, src.committed(), "an unprocessed task must stay uncommitted for redelivery")
}

func TestConsumer_DropsUndecodableMessage(t *testing.T) {
	src := &fakeSource{msgs: []kafka.Message{
		{Offset: 1, Value: []byte("not json")},
		envelopeMessage(t, 2, TaskAuctionWon),
	}}
	ctx, cancel := context.WithCancel(context.Background())

	var handled []string
	processed := make(chan struct{})
	h := func(_ context.Context, env Envelope) error {
		handled = append(handled, env.Type)
		close(processed)
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- testConsumer(src).Start(ctx, h) }()

	select {
	case <-processed:
	case <-time.After(time.Second):
		t.Fatal("valid task after the poison message was not processed")
	}
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []string{TaskAuctionWon}, handled)
	assert.Equal(t, []int64{1, 2}, src.committed(), "poison message is committed so it never redelivers")
}
