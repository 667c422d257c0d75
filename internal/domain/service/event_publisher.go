package service

import (
	"context"

	"petcare/internal/domain/entity"
)

// ReminderEvent carries the due reminders of one owner to the reminder worker
type ReminderEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	EventID   string            `json:"event_id"`
	OwnerID   string            `json:"owner_id"`
	Tokens    []string          `json:"tokens"`
	Reminders []entity.Reminder `json:"reminders"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderEvent publishes a reminder event for async delivery
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
