package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"petcare/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessaging struct {
	multicast []*messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeMessaging) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)

	return f.response, f.err
}

func createTestFirebaseService(client *fakeMessaging) *firebaseService {
	return &firebaseService{
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func TestSendBatch(t *testing.T) {
	client := &fakeMessaging{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Error: errors.New("internal error")},
		},
	}}
	svc := createTestFirebaseService(client)

	result, err := svc.SendBatch(context.Background(), []string{"tok-1", "tok-2"}, &service.PushMessage{
		Title: "Vacuna de Firulais",
		Body:  "Vence pronto",
		Data:  map[string]string{"kind": "vaccine"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failure)
	assert.Empty(t, result.InvalidTokens)

	require.Len(t, client.multicast, 1)
	msg := client.multicast[0]
	assert.Equal(t, []string{"tok-1", "tok-2"}, msg.Tokens)
	assert.Equal(t, "Vacuna de Firulais", msg.Notification.Title)
	assert.Equal(t, "Vence pronto", msg.Notification.Body)
	assert.Equal(t, "vaccine", msg.Data["kind"])
}

func TestSendBatch_Limits(t *testing.T) {
	client := &fakeMessaging{}
	svc := createTestFirebaseService(client)
	msg := &service.PushMessage{Title: "t", Body: "b"}

	t.Run("no tokens", func(t *testing.T) {
		result, err := svc.SendBatch(context.Background(), nil, msg)

		require.NoError(t, err)
		assert.Equal(t, &service.BatchResult{}, result)
	})

	t.Run("too many tokens", func(t *testing.T) {
		tokens := make([]string, MaxBatchTokens+1)

		_, err := svc.SendBatch(context.Background(), tokens, msg)

		assert.Error(t, err)
	})

	assert.Empty(t, client.multicast)
}

func TestSendBatch_ClientError(t *testing.T) {
	svc := createTestFirebaseService(&fakeMessaging{err: errors.New("unavailable")})

	_, err := svc.SendBatch(context.Background(), []string{"tok-1"}, &service.PushMessage{Title: "t"})

	assert.Error(t, err)
}
