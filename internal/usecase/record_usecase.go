package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// RecordUsecase defines the operations shared by every medical sub-record of a
// pet. T is the record, C its creation input and U its update input.
type RecordUsecase[T any, C any, U any] interface {
	List(ctx context.Context, ownerID, petID string) ([]*T, error)
	Watch(ctx context.Context, ownerID, petID string) (*stream.Stream[[]*T], error)
	Add(ctx context.Context, ownerID, petID string, input *C) (string, error)
	Update(ctx context.Context, ownerID, petID, id string, input *U) error
	Delete(ctx context.Context, ownerID, petID, id string) error
}

type (
	AppointmentUsecase = RecordUsecase[entity.Appointment, AppointmentInput, AppointmentUpdate]
	VaccineUsecase     = RecordUsecase[entity.Vaccine, VaccineInput, VaccineUpdate]
	MedicationUsecase  = RecordUsecase[entity.Medication, MedicationInput, MedicationUpdate]
)

// ExamUsecase adds the exam state machine and its documents.
type ExamUsecase interface {
	RecordUsecase[entity.Exam, ExamInput, ExamUpdate]

	// SetPerformed moves the exam to Performed (stamping now) or back to
	// Scheduled (removing the performed date).
	SetPerformed(ctx context.Context, ownerID, petID, examID string, performed bool) error

	// UploadFile stores an order or result document. A result marks the exam as
	// performed and stamps the performed date when absent.
	UploadFile(ctx context.Context, ownerID, petID, examID string, kind entity.ExamFileKind, file entity.Upload) (string, error)

	// DeleteFile clears the document URL, then deletes the file.
	DeleteFile(ctx context.Context, ownerID, petID, examID string, kind entity.ExamFileKind) error
}

// --- Input DTOs ---

// AppointmentInput defines the data required to schedule an appointment.
type AppointmentInput struct {
	Title    string     `json:"title" validate:"required,max=120"`
	Start    time.Time  `json:"start" validate:"required"`
	End      *time.Time `json:"end,omitempty"`
	Location string     `json:"location" validate:"max=200"`
	Notes    string     `json:"notes" validate:"max=2000"`
}

// AppointmentUpdate defines the appointment fields to change.
type AppointmentUpdate struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=1,max=120"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Location *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes    *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ClearEnd bool       `json:"clearEnd,omitempty"` // Removes the end time; ignored when End is set.
}

// VaccineInput defines the data required to record a vaccine.
type VaccineInput struct {
	Type      string     `json:"type" validate:"required,max=120"`
	AppliedAt time.Time  `json:"appliedAt" validate:"required"`
	NextDueAt *time.Time `json:"nextDueAt,omitempty"`
	Cost      float64    `json:"cost" validate:"gte=0"`
	Notes     string     `json:"notes" validate:"max=2000"`
}

// VaccineUpdate defines the vaccine fields to change.
type VaccineUpdate struct {
	Type      *string    `json:"type,omitempty" validate:"omitempty,min=1,max=120"`
	AppliedAt *time.Time `json:"appliedAt,omitempty"`
	NextDueAt *time.Time `json:"nextDueAt,omitempty"`
	Cost      *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Notes     *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`

	ClearNextDueAt bool `json:"clearNextDueAt,omitempty"` // Removes the next due date; ignored when NextDueAt is set.
}

// ExamInput defines the data required to record an exam.
type ExamInput struct {
	Type        string     `json:"type" validate:"required,max=120"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Performed   bool       `json:"performed"`
	PerformedAt *time.Time `json:"performedAt,omitempty"`
	Location    string     `json:"location" validate:"max=200"`
	Cost        float64    `json:"cost" validate:"gte=0"`
	Notes       string     `json:"notes" validate:"max=2000"`
}

// ExamUpdate defines the exam fields to change. Use ExamUsecase.SetPerformed
// to change the performed state.
type ExamUpdate struct {
	Type        *string    `json:"type,omitempty" validate:"omitempty,min=1,max=120"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Cost        *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Notes       *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// MedicationInput defines the data required to record a medication.
type MedicationInput struct {
	Name      string     `json:"name" validate:"required,max=120"`
	DosageMg  float64    `json:"dosageMg" validate:"gt=0"`
	StartDate time.Time  `json:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Cost      float64    `json:"cost" validate:"gte=0"`
	Notes     string     `json:"notes" validate:"max=2000"`
}

// MedicationUpdate defines the medication fields to change.
type MedicationUpdate struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	DosageMg  *float64   `json:"dosageMg,omitempty" validate:"omitempty,gt=0"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Cost      *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Notes     *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`

	ClearEndDate bool `json:"clearEndDate,omitempty"` // Removes the end date; ignored when EndDate is set.
}
