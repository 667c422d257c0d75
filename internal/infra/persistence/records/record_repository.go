// Package records implements the domain repositories on top of a document store.
package records

import (
	"context"
	"sort"

	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/infra/persistence/model"
	"petcare/internal/stream"
)

// codec describes how one kind of sub-record is stored and ordered.
type codec[T any, P any] struct {
	collection string
	orderBy    string
	descending bool
	encode     func(*T) map[string]any
	decode     func(repository.Document) *T
	updates    func(P) []repository.FieldUpdate
	// less orders records client-side when the store cannot, e.g. when the
	// ordering field is optional and the store would drop records lacking it.
	less func(a, b *T) bool
}

// recordRepository implements repository.RecordRepository for one sub-record kind.
type recordRepository[T any, P any] struct {
	store repository.DocumentStore
	codec codec[T, P]
}

// NewAppointmentRepository returns appointments ordered by start ascending.
func NewAppointmentRepository(store repository.DocumentStore) repository.AppointmentRepository {
	return &recordRepository[entity.Appointment, entity.AppointmentPatch]{
		store: store,
		codec: codec[entity.Appointment, entity.AppointmentPatch]{
			collection: model.CollectionAppointments,
			orderBy:    model.FieldStart,
			encode:     model.AppointmentFields,
			decode:     model.AppointmentFromDocument,
			updates:    model.AppointmentUpdates,
		},
	}
}

// NewVaccineRepository returns vaccines ordered by application date descending.
func NewVaccineRepository(store repository.DocumentStore) repository.VaccineRepository {
	return &recordRepository[entity.Vaccine, entity.VaccinePatch]{
		store: store,
		codec: codec[entity.Vaccine, entity.VaccinePatch]{
			collection: model.CollectionVaccines,
			orderBy:    model.FieldAppliedAt,
			descending: true,
			encode:     model.VaccineFields,
			decode:     model.VaccineFromDocument,
			updates:    model.VaccineUpdates,
		},
	}
}

// NewExamRepository returns exams ordered by scheduled date ascending. Exams
// without a scheduled date come last.
func NewExamRepository(store repository.DocumentStore) repository.ExamRepository {
	return &recordRepository[entity.Exam, entity.ExamPatch]{
		store: store,
		codec: codec[entity.Exam, entity.ExamPatch]{
			collection: model.CollectionExams,
			encode:     model.ExamFields,
			decode:     model.ExamFromDocument,
			updates:    model.ExamUpdates,
			less:       examLess,
		},
	}
}

// NewMedicationRepository returns medications ordered by start date descending.
func NewMedicationRepository(store repository.DocumentStore) repository.MedicationRepository {
	return &recordRepository[entity.Medication, entity.MedicationPatch]{
		store: store,
		codec: codec[entity.Medication, entity.MedicationPatch]{
			collection: model.CollectionMedications,
			orderBy:    model.FieldStartDate,
			descending: true,
			encode:     model.MedicationFields,
			decode:     model.MedicationFromDocument,
			updates:    model.MedicationUpdates,
		},
	}
}

func examLess(a, b *entity.Exam) bool {
	switch {
	case a.ScheduledAt == nil && b.ScheduledAt == nil:
		return a.CreatedAt.Before(b.CreatedAt)
	case a.ScheduledAt == nil:
		return false
	case b.ScheduledAt == nil:
		return true
	default:
		return a.ScheduledAt.Before(*b.ScheduledAt)
	}
}

func (r *recordRepository[T, P]) ListByPet(ctx context.Context, petID string) (*stream.Stream[[]*T], error) {
	src, err := r.store.StreamCollection(ctx, repository.Query{
		Collection: model.SubCollectionPath(petID, r.codec.collection),
		OrderBy:    r.codec.orderBy,
		Descending: r.codec.descending,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.codec.collection)
	}

	return stream.Map(src, func(docs []repository.Document) ([]*T, error) {
		out := make([]*T, 0, len(docs))
		for _, d := range docs {
			out = append(out, r.codec.decode(d))
		}
		if r.codec.less != nil {
			sort.SliceStable(out, func(i, j int) bool { return r.codec.less(out[i], out[j]) })
		}

		return out, nil
	}), nil
}

func (r *recordRepository[T, P]) Watch(ctx context.Context, petID, id string) (*stream.Stream[*T], error) {
	src, err := r.store.StreamDocument(ctx, r.path(petID, id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to watch %s", r.codec.collection)
	}

	return stream.Map(src, func(doc *repository.Document) (*T, error) {
		if doc == nil {
			return nil, nil
		}

		return r.codec.decode(*doc), nil
	}), nil
}

func (r *recordRepository[T, P]) Add(ctx context.Context, petID string, record *T) (string, error) {
	id, err := r.store.CreateDocument(ctx, model.SubCollectionPath(petID, r.codec.collection), r.codec.encode(record), "")
	if err != nil {
		return "", errors.Wrapf(err, "failed to add %s", r.codec.collection)
	}

	return id, nil
}

func (r *recordRepository[T, P]) Update(ctx context.Context, petID, id string, patch P) error {
	updates := r.codec.updates(patch)
	if len(updates) == 0 {
		return nil
	}

	if err := r.store.UpdateDocument(ctx, r.path(petID, id), updates...); err != nil {
		return errors.Wrapf(err, "failed to update %s", r.codec.collection)
	}

	return nil
}

// Delete removes the record; a record that is already gone is not an error.
func (r *recordRepository[T, P]) Delete(ctx context.Context, petID, id string) error {
	err := r.store.DeleteDocument(ctx, r.path(petID, id))
	if err != nil && !errors.Is(err, repository.ErrDocumentNotFound) {
		return errors.Wrapf(err, "failed to delete %s", r.codec.collection)
	}

	return nil
}

func (r *recordRepository[T, P]) path(petID, id string) string {
	return model.SubCollectionPath(petID, r.codec.collection) + "/" + id
}
