package notification

import (
	"context"
	"log/slog"

	"petcare/internal/domain/service"
	"petcare/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// MaxBatchTokens is the FCM multicast limit.
const MaxBatchTokens = 500

// messagingClient is the part of the FCM client used for delivery.
type messagingClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates the push notification service from the shared Firebase app
func NewFirebaseService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendBatch sends msg to up to MaxBatchTokens device tokens
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > MaxBatchTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		Success:       response.SuccessCount,
		Failure:       response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	if result.Failure > 0 {
		s.logger.Warn("Some notifications were not delivered",
			slog.Int("failure_count", result.Failure),
			slog.Int("invalid_tokens", len(result.InvalidTokens)),
		)
	}

	return result, nil
}
