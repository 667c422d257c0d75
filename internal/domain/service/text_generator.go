package service

import (
	"context"
)

// TextGenerator produces a free-text completion for a prompt.
type TextGenerator interface {
	// Generate answers prompt following the given system instruction.
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}
