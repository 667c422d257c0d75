package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/service"
	"petcare/internal/usecase"
)

// Authors of assistant conversation lines.
const (
	AssistantAuthor = "Ashbis IA"
	UserAuthor      = "Tú"
)

// AssistantInstruction is sent with every question.
const AssistantInstruction = "Eres Ashbis IA, un asistente virtual experto en el cuidado de mascotas. " +
	"Responde siempre en español, en texto plano sin Markdown ni viñetas, " +
	"con un máximo de 10 líneas."

const (
	greetingMessage    = "👋 ¡Hola! Soy Ashbis IA, tu asistente virtual para cuidar a tus mascotas. ¿Sobre qué quieres aprender hoy?"
	petTypeMessage     = "Perfecto 🐾. ¿Qué tipo de mascota tienes?"
	askMessage         = "Excelente 🐶🐱. Ahora escribe tu pregunta sobre %s de tu %s."
	emptyAnswerMessage = "Lo siento, no entendí la respuesta. 😅"
	failureMessage     = "🚨 Ocurrió un error al procesar tu mensaje."
)

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(generator service.TextGenerator, logger *slog.Logger) usecase.AssistantUsecase {
	return &assistantService{
		generator: generator,
		logger:    logger,
	}
}

// Start opens a conversation at the topic step.
func (srv *assistantService) Start() *entity.Conversation {
	return &entity.Conversation{
		Step:     entity.ChatChooseTopic,
		Messages: []entity.ChatMessage{{Author: AssistantAuthor, Text: greetingMessage}},
	}
}

// Reply advances the conversation by one user message. Generation failures
// become a fallback answer rather than an error.
func (srv *assistantService) Reply(ctx context.Context, conv *entity.Conversation, message string) (*entity.Conversation, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.NewValidationError("message required")
	}

	next := srv.Start()
	if conv != nil && conv.Step != 0 {
		copied := *conv
		copied.Messages = append([]entity.ChatMessage(nil), conv.Messages...)
		next = &copied
	}

	switch next.Step {
	case entity.ChatChooseTopic:
		next.Topic = message
		next.Step = entity.ChatChoosePetType
		next.Messages = append(next.Messages, entity.ChatMessage{Author: AssistantAuthor, Text: petTypeMessage})
	case entity.ChatChoosePetType:
		next.PetType = message
		next.Step = entity.ChatAsk
		next.Messages = append(next.Messages, entity.ChatMessage{
			Author: AssistantAuthor,
			Text:   fmt.Sprintf(askMessage, next.Topic, next.PetType),
		})
	case entity.ChatAsk:
		next.Messages = append(next.Messages,
			entity.ChatMessage{Author: UserAuthor, Text: message},
			entity.ChatMessage{Author: AssistantAuthor, Text: srv.answer(ctx, next, message)},
		)
	default:
		return nil, domainerrors.NewValidationError("unknown conversation step")
	}

	return next, nil
}

// QuestionPrompt formats a question with the conversation's topic and pet type.
func QuestionPrompt(topic, petType, question string) string {
	return fmt.Sprintf("Tema: %s, Mascota: %s. Pregunta: %s", topic, petType, question)
}

func (srv *assistantService) answer(ctx context.Context, conv *entity.Conversation, question string) string {
	text, err := srv.generator.Generate(ctx, AssistantInstruction, QuestionPrompt(conv.Topic, conv.PetType, question))
	if err != nil {
		srv.logger.Error("Assistant generation failed", slog.Any("error", err))

		return failureMessage
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return emptyAnswerMessage
	}

	return text
}
