package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// HistoryUsecase serves the derived views over a pet's medical records.
type HistoryUsecase interface {
	// AppointmentsOnDay returns the pet's appointments on day's calendar day.
	AppointmentsOnDay(ctx context.Context, ownerID, petID string, day time.Time) ([]*entity.Appointment, error)

	// Calendar returns the pet's appointments of month grouped by day.
	Calendar(ctx context.Context, ownerID, petID string, month time.Time) ([]entity.DayAppointments, error)

	// Finance returns the expense summary at this moment.
	Finance(ctx context.Context, ownerID, petID string) (*entity.FinanceSummary, error)

	// WatchFinance recomputes the summary whenever any cost-bearing collection
	// changes, without waiting for the others to arrive.
	WatchFinance(ctx context.Context, ownerID, petID string) (*stream.Stream[entity.FinanceSummary], error)

	// MedicationStatus classifies one medication at the current time.
	MedicationStatus(ctx context.Context, ownerID, petID, medicationID string) (entity.MedicationStatus, error)
}
