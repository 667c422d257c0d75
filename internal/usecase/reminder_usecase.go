package usecase

import (
	"context"

	"petcare/internal/domain/service"
)

// ReminderUsecase finds upcoming vaccine doses and appointments and delivers
// them as push notifications.
type ReminderUsecase interface {
	// Dispatch publishes the owner's due reminders; it returns how many were
	// found. Nothing is published when there are none.
	Dispatch(ctx context.Context, ownerID string) (int, error)

	// Deliver sends the reminders of one event to its device tokens. Delivery is
	// at least once: a retried event resends reminders that already went out.
	Deliver(ctx context.Context, event *service.ReminderEvent) error
}
