package impl

import (
	"context"
	"testing"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	mockSvc "petcare/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantService_ScriptedFlow(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	srv := NewAssistantService(generator, testLogger())
	ctx := context.Background()

	conv := srv.Start()
	assert.Equal(t, entity.ChatChooseTopic, conv.Step)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, AssistantAuthor, conv.Messages[0].Author)

	conv, err := srv.Reply(ctx, conv, "Alimentación")
	require.NoError(t, err)
	assert.Equal(t, entity.ChatChoosePetType, conv.Step)
	assert.Equal(t, "Alimentación", conv.Topic)

	conv, err = srv.Reply(ctx, conv, "Gato")
	require.NoError(t, err)
	assert.Equal(t, entity.ChatAsk, conv.Step)
	assert.Contains(t, conv.Messages[len(conv.Messages)-1].Text, "Alimentación")

	generator.EXPECT().
		Generate(ctx, AssistantInstruction, "Tema: Alimentación, Mascota: Gato. Pregunta: ¿Puede comer atún?").
		Return("Con moderación.\n", nil)

	conv, err = srv.Reply(ctx, conv, "  ¿Puede comer atún?  ")
	require.NoError(t, err)
	assert.Equal(t, entity.ChatAsk, conv.Step)

	n := len(conv.Messages)
	assert.Equal(t, entity.ChatMessage{Author: UserAuthor, Text: "¿Puede comer atún?"}, conv.Messages[n-2])
	assert.Equal(t, entity.ChatMessage{Author: AssistantAuthor, Text: "Con moderación."}, conv.Messages[n-1])
}

func TestAssistantService_Reply_DoesNotMutateInput(t *testing.T) {
	srv := NewAssistantService(mockSvc.NewMockTextGenerator(t), testLogger())

	start := srv.Start()
	next, err := srv.Reply(context.Background(), start, "Salud")
	require.NoError(t, err)

	assert.Equal(t, entity.ChatChooseTopic, start.Step)
	assert.Len(t, start.Messages, 1)
	assert.Len(t, next.Messages, 2)
}

func TestAssistantService_Reply_EmptyQuestionRejected(t *testing.T) {
	srv := NewAssistantService(mockSvc.NewMockTextGenerator(t), testLogger())
	conv := &entity.Conversation{Step: entity.ChatAsk, Topic: "Salud", PetType: "Perro"}

	_, err := srv.Reply(context.Background(), conv, "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssistantService_Reply_FallbackMessages(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	srv := NewAssistantService(generator, testLogger())
	ctx := context.Background()
	conv := &entity.Conversation{Step: entity.ChatAsk, Topic: "Salud", PetType: "Perro"}

	generator.EXPECT().Generate(ctx, AssistantInstruction, QuestionPrompt("Salud", "Perro", "¿Fiebre?")).
		Return("", errors.New("upstream timeout")).Once()
	generator.EXPECT().Generate(ctx, AssistantInstruction, QuestionPrompt("Salud", "Perro", "¿Tos?")).
		Return("  ", nil).Once()

	next, err := srv.Reply(ctx, conv, "¿Fiebre?")
	require.NoError(t, err)
	assert.Equal(t, failureMessage, next.Messages[len(next.Messages)-1].Text)

	next, err = srv.Reply(ctx, next, "¿Tos?")
	require.NoError(t, err)
	assert.Equal(t, emptyAnswerMessage, next.Messages[len(next.Messages)-1].Text)
}

func TestAssistantService_Reply_NilConversationStartsOver(t *testing.T) {
	srv := NewAssistantService(mockSvc.NewMockTextGenerator(t), testLogger())

	conv, err := srv.Reply(context.Background(), nil, "Higiene")
	require.NoError(t, err)

	assert.Equal(t, entity.ChatChoosePetType, conv.Step)
	assert.Len(t, conv.Messages, 2)
}
