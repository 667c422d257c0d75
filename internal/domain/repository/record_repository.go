package repository

import (
	"context"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// RecordRepository manages one kind of medical sub-record nested under a pet.
// T is the record type and P its patch type.
type RecordRepository[T any, P any] interface {
	// ListByPet streams the pet's records in the collection's query order.
	ListByPet(ctx context.Context, petID string) (*stream.Stream[[]*T], error)

	// Watch streams one record; nil while it does not exist.
	Watch(ctx context.Context, petID, id string) (*stream.Stream[*T], error)

	// Add stores a new record under the pet and returns its ID.
	Add(ctx context.Context, petID string, record *T) (string, error)

	// Update applies a partial update.
	Update(ctx context.Context, petID, id string, patch P) error

	// Delete removes the record.
	Delete(ctx context.Context, petID, id string) error
}

// Sub-record repositories. Ordering: appointments by start ascending, vaccines by
// application date descending, exams by scheduled date ascending, medications by
// start date descending.
type (
	AppointmentRepository = RecordRepository[entity.Appointment, entity.AppointmentPatch]
	VaccineRepository     = RecordRepository[entity.Vaccine, entity.VaccinePatch]
	ExamRepository        = RecordRepository[entity.Exam, entity.ExamPatch]
	MedicationRepository  = RecordRepository[entity.Medication, entity.MedicationPatch]
)
