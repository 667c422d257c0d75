package service

import (
	"context"
)

// PushMessage is the visible text and data payload of one notification
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult reports a multicast delivery. InvalidTokens were rejected as
// malformed or unregistered and should be dropped from the owner's profile.
type BatchResult struct {
	Success       int
	Failure       int
	InvalidTokens []string
}

// NotificationService delivers push notifications to device tokens
type NotificationService interface {
	// SendBatch sends msg to every token in one multicast call
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
