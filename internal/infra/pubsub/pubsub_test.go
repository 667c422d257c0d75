package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petcare/config"
	"petcare/internal/domain/entity"
	"petcare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testEvent() *service.ReminderEvent {
	return &service.ReminderEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		OwnerID:   "owner-1",
		Tokens:    []string{"tok-1"},
		Reminders: []entity.Reminder{{
			PetID:   "pet-1",
			PetName: "Firulais",
			Kind:    entity.KindVaccine,
			Title:   "Rabia",
			DueAt:   time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC),
		}},
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var got PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL+"/push", testLogger())
	require.NoError(t, publisher.PublishReminderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, "owner-1", got.Message.Attributes["owner_id"])
	assert.Equal(t, "req-1", got.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.ReminderEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "owner-1", event.OwnerID)
	require.Len(t, event.Reminders, 1)
	assert.Equal(t, "Firulais", event.Reminders[0].PetName)
	assert.True(t, event.Reminders[0].DueAt.Equal(testEvent().Reminders[0].DueAt))
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	err := publisher.PublishReminderEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		p, err := newPublisher(ctx, nil, testLogger())

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, p)
		assert.NoError(t, p.PublishReminderEvent(ctx, testEvent()))
		assert.NoError(t, p.Close())
	})

	t.Run("local", func(t *testing.T) {
		p, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, testLogger())

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, p)
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local"}, testLogger())

		assert.Error(t, err)
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "google", ProjectID: "p"}, testLogger())

		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, testLogger())

		assert.Error(t, err)
	})
}
