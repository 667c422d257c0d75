package impl

import (
	"context"
	"log/slog"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// recordRules builds records and patches from validated inputs and applies the
// cross-field rules the struct tags cannot express.
type recordRules[T any, P any, C any, U any] struct {
	name  string
	build func(ownerID string, input *C, now Clock) (*T, error)
	patch func(current *T, input *U) (P, error)
}

// recordService implements usecase.RecordUsecase for one sub-record kind.
type recordService[T any, P any, C any, U any] struct {
	repo      repository.RecordRepository[T, P]
	access    *petAccess
	validator *validation.Validator
	logger    *slog.Logger
	rules     recordRules[T, P, C, U]
	now       Clock
}

// NewAppointmentService is the constructor for the appointment usecase.
func NewAppointmentService(
	repo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.AppointmentUsecase {
	return newRecordService(repo, petRepo, validator, logger, appointmentRules)
}

// NewVaccineService is the constructor for the vaccine usecase.
func NewVaccineService(
	repo repository.VaccineRepository,
	petRepo repository.PetRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.VaccineUsecase {
	return newRecordService(repo, petRepo, validator, logger, vaccineRules)
}

// NewMedicationService is the constructor for the medication usecase.
func NewMedicationService(
	repo repository.MedicationRepository,
	petRepo repository.PetRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.MedicationUsecase {
	return newRecordService(repo, petRepo, validator, logger, medicationRules)
}

func newRecordService[T any, P any, C any, U any](
	repo repository.RecordRepository[T, P],
	petRepo repository.PetRepository,
	validator *validation.Validator,
	logger *slog.Logger,
	rules recordRules[T, P, C, U],
) *recordService[T, P, C, U] {
	return &recordService[T, P, C, U]{
		repo:      repo,
		access:    &petAccess{petRepo: petRepo},
		validator: validator,
		logger:    logger,
		rules:     rules,
		now:       defaultClock,
	}
}

func (srv *recordService[T, P, C, U]) List(ctx context.Context, ownerID, petID string) ([]*T, error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	list, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*T], error) {
		return srv.repo.ListByPet(ctx, petID)
	})
	if err != nil {
		return nil, storeError(err, "failed to list "+srv.rules.name)
	}

	return list, nil
}

func (srv *recordService[T, P, C, U]) Watch(ctx context.Context, ownerID, petID string) (*stream.Stream[[]*T], error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	s, err := srv.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, storeError(err, "failed to watch "+srv.rules.name)
	}

	return s, nil
}

func (srv *recordService[T, P, C, U]) Add(ctx context.Context, ownerID, petID string, input *C) (string, error) {
	if input == nil {
		return "", domainerrors.NewValidationError(srv.rules.name + " required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return "", err
	}
	record, err := srv.rules.build(ownerID, input, srv.now)
	if err != nil {
		return "", err
	}
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return "", err
	}

	id, err := srv.repo.Add(ctx, petID, record)
	if err != nil {
		return "", storeError(err, "failed to add "+srv.rules.name)
	}

	srv.logger.Debug("Record added", slog.String("kind", srv.rules.name), slog.String("petID", petID), slog.String("id", id))

	return id, nil
}

// Update validates input against the stored record so cross-field rules hold
// for the merged result.
func (srv *recordService[T, P, C, U]) Update(ctx context.Context, ownerID, petID, id string, input *U) error {
	if input == nil {
		return domainerrors.NewValidationError(srv.rules.name + " required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return err
	}

	current, err := srv.current(ctx, ownerID, petID, id)
	if err != nil {
		return err
	}

	patch, err := srv.rules.patch(current, input)
	if err != nil {
		return err
	}

	return storeError(srv.repo.Update(ctx, petID, id, patch), "failed to update "+srv.rules.name)
}

func (srv *recordService[T, P, C, U]) Delete(ctx context.Context, ownerID, petID, id string) error {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return err
	}

	return storeError(srv.repo.Delete(ctx, petID, id), "failed to delete "+srv.rules.name)
}

// current loads one record of one of the owner's pets.
func (srv *recordService[T, P, C, U]) current(ctx context.Context, ownerID, petID, id string) (*T, error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	record, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[*T], error) {
		return srv.repo.Watch(ctx, petID, id)
	})
	if err != nil {
		return nil, storeError(err, "failed to load "+srv.rules.name)
	}
	if record == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, srv.rules.name+" not found")
	}

	return record, nil
}

var appointmentRules = recordRules[entity.Appointment, entity.AppointmentPatch, usecase.AppointmentInput, usecase.AppointmentUpdate]{
	name: "appointment",
	build: func(ownerID string, in *usecase.AppointmentInput, _ Clock) (*entity.Appointment, error) {
		if in.End != nil && in.End.Before(in.Start) {
			return nil, domainerrors.NewValidationError("End before Start")
		}

		return &entity.Appointment{
			Title:     in.Title,
			Start:     in.Start,
			End:       in.End,
			Location:  in.Location,
			Notes:     in.Notes,
			CreatedBy: ownerID,
		}, nil
	},
	patch: func(cur *entity.Appointment, in *usecase.AppointmentUpdate) (entity.AppointmentPatch, error) {
		start, end := cur.Start, cur.End
		if in.Start != nil {
			start = *in.Start
		}
		if in.End != nil {
			end = in.End
		} else if in.ClearEnd {
			end = nil
		}
		if end != nil && end.Before(start) {
			return entity.AppointmentPatch{}, domainerrors.NewValidationError("End before Start")
		}

		return entity.AppointmentPatch{
			Title:    in.Title,
			Start:    in.Start,
			End:      in.End,
			ClearEnd: in.ClearEnd && in.End == nil,
			Location: in.Location,
			Notes:    in.Notes,
		}, nil
	},
}

var vaccineRules = recordRules[entity.Vaccine, entity.VaccinePatch, usecase.VaccineInput, usecase.VaccineUpdate]{
	name: "vaccine",
	build: func(ownerID string, in *usecase.VaccineInput, _ Clock) (*entity.Vaccine, error) {
		if in.NextDueAt != nil && in.NextDueAt.Before(in.AppliedAt) {
			return nil, domainerrors.NewValidationError("NextDueAt before AppliedAt")
		}

		return &entity.Vaccine{
			Type:      in.Type,
			AppliedAt: in.AppliedAt,
			NextDueAt: in.NextDueAt,
			Cost:      in.Cost,
			Notes:     in.Notes,
			CreatedBy: ownerID,
		}, nil
	},
	patch: func(cur *entity.Vaccine, in *usecase.VaccineUpdate) (entity.VaccinePatch, error) {
		applied, next := cur.AppliedAt, cur.NextDueAt
		if in.AppliedAt != nil {
			applied = *in.AppliedAt
		}
		if in.NextDueAt != nil {
			next = in.NextDueAt
		} else if in.ClearNextDueAt {
			next = nil
		}
		if next != nil && next.Before(applied) {
			return entity.VaccinePatch{}, domainerrors.NewValidationError("NextDueAt before AppliedAt")
		}

		return entity.VaccinePatch{
			Type:           in.Type,
			AppliedAt:      in.AppliedAt,
			NextDueAt:      in.NextDueAt,
			ClearNextDueAt: in.ClearNextDueAt && in.NextDueAt == nil,
			Cost:           in.Cost,
			Notes:          in.Notes,
		}, nil
	},
}

var medicationRules = recordRules[entity.Medication, entity.MedicationPatch, usecase.MedicationInput, usecase.MedicationUpdate]{
	name: "medication",
	build: func(_ string, in *usecase.MedicationInput, _ Clock) (*entity.Medication, error) {
		if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
			return nil, domainerrors.NewValidationError("EndDate before StartDate")
		}

		return &entity.Medication{
			Name:      in.Name,
			DosageMg:  in.DosageMg,
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Cost:      in.Cost,
			Notes:     in.Notes,
		}, nil
	},
	patch: func(cur *entity.Medication, in *usecase.MedicationUpdate) (entity.MedicationPatch, error) {
		start, end := cur.StartDate, cur.EndDate
		if in.StartDate != nil {
			start = *in.StartDate
		}
		if in.EndDate != nil {
			end = in.EndDate
		} else if in.ClearEndDate {
			end = nil
		}
		if end != nil && end.Before(start) {
			return entity.MedicationPatch{}, domainerrors.NewValidationError("EndDate before StartDate")
		}

		return entity.MedicationPatch{
			Name:         in.Name,
			DosageMg:     in.DosageMg,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			ClearEndDate: in.ClearEndDate && in.EndDate == nil,
			Cost:         in.Cost,
			Notes:        in.Notes,
		}, nil
	},
}
