package usecase

import (
	"context"

	"petcare/internal/domain/entity"
)

// AssistantUsecase drives the scripted pet-care chat. Conversations are held by
// the client and passed back on every turn.
type AssistantUsecase interface {
	// Start returns a fresh conversation at the topic step with the greeting.
	Start() *entity.Conversation

	// Reply advances conv with the user's message and returns the new state.
	Reply(ctx context.Context, conv *entity.Conversation, message string) (*entity.Conversation, error)
}
