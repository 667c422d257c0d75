package impl

import (
	"context"
	"time"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/view"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"
)

// historyService implements the HistoryUsecase interface.
type historyService struct {
	access       *petAccess
	appointments repository.AppointmentRepository
	vaccines     repository.VaccineRepository
	exams        repository.ExamRepository
	medications  repository.MedicationRepository
	now          Clock
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(
	petRepo repository.PetRepository,
	appointments repository.AppointmentRepository,
	vaccines repository.VaccineRepository,
	exams repository.ExamRepository,
	medications repository.MedicationRepository,
) usecase.HistoryUsecase {
	return &historyService{
		access:       &petAccess{petRepo: petRepo},
		appointments: appointments,
		vaccines:     vaccines,
		exams:        exams,
		medications:  medications,
		now:          defaultClock,
	}
}

func (srv *historyService) AppointmentsOnDay(ctx context.Context, ownerID, petID string, day time.Time) ([]*entity.Appointment, error) {
	list, err := srv.listAppointments(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	return view.AppointmentsOnDay(list, day), nil
}

func (srv *historyService) Calendar(ctx context.Context, ownerID, petID string, month time.Time) ([]entity.DayAppointments, error) {
	list, err := srv.listAppointments(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	return view.GroupByDay(view.AppointmentsInMonth(list, month), month.Location()), nil
}

func (srv *historyService) Finance(ctx context.Context, ownerID, petID string) (*entity.FinanceSummary, error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	vaccines, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Vaccine], error) {
		return srv.vaccines.ListByPet(ctx, petID)
	})
	if err != nil {
		return nil, storeError(err, "failed to list vaccines")
	}

	exams, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Exam], error) {
		return srv.exams.ListByPet(ctx, petID)
	})
	if err != nil {
		return nil, storeError(err, "failed to list exams")
	}

	medications, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Medication], error) {
		return srv.medications.ListByPet(ctx, petID)
	})
	if err != nil {
		return nil, storeError(err, "failed to list medications")
	}

	summary := view.Finance(vaccines, exams, medications)

	return &summary, nil
}

// WatchFinance combines the three cost-bearing collections. A summary is
// emitted as soon as any of them reports, using empty lists for the others.
func (srv *historyService) WatchFinance(ctx context.Context, ownerID, petID string) (*stream.Stream[entity.FinanceSummary], error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	var group stream.Group

	vaccines, err := srv.vaccines.ListByPet(ctx, petID)
	if err != nil {
		return nil, storeError(err, "failed to watch vaccines")
	}
	group.Add(vaccines)

	exams, err := srv.exams.ListByPet(ctx, petID)
	if err != nil {
		group.StopAll()

		return nil, storeError(err, "failed to watch exams")
	}
	group.Add(exams)

	medications, err := srv.medications.ListByPet(ctx, petID)
	if err != nil {
		group.StopAll()

		return nil, storeError(err, "failed to watch medications")
	}

	return stream.Latest3(vaccines, exams, medications, view.Finance), nil
}

func (srv *historyService) MedicationStatus(ctx context.Context, ownerID, petID, medicationID string) (entity.MedicationStatus, error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return "", err
	}

	med, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[*entity.Medication], error) {
		return srv.medications.Watch(ctx, petID, medicationID)
	})
	if err != nil {
		return "", storeError(err, "failed to load medication")
	}
	if med == nil {
		return "", errors.Wrap(domainerrors.ErrNotFound, "medication not found")
	}

	return view.MedicationStatus(med, srv.now()), nil
}

func (srv *historyService) listAppointments(ctx context.Context, ownerID, petID string) ([]*entity.Appointment, error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	list, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Appointment], error) {
		return srv.appointments.ListByPet(ctx, petID)
	})
	if err != nil {
		return nil, storeError(err, "failed to list appointments")
	}

	return list, nil
}
