package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"petcare/config"
	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/domain/view"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// DefaultReminderWindow is used when no window is configured.
const DefaultReminderWindow = 7 * 24 * time.Hour

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	profileRepo  repository.UserProfileRepository
	petRepo      repository.PetRepository
	vaccines     repository.VaccineRepository
	appointments repository.AppointmentRepository
	publisher    service.EventPublisher
	notifier     service.NotificationService
	window       time.Duration
	logger       *slog.Logger
	now          Clock
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(
	profileRepo repository.UserProfileRepository,
	petRepo repository.PetRepository,
	vaccines repository.VaccineRepository,
	appointments repository.AppointmentRepository,
	publisher service.EventPublisher,
	notifier service.NotificationService,
	cfg *config.RemindersConfig,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	window := DefaultReminderWindow
	if cfg != nil && cfg.WindowDays > 0 {
		window = time.Duration(cfg.WindowDays) * 24 * time.Hour
	}

	return &reminderService{
		profileRepo:  profileRepo,
		petRepo:      petRepo,
		vaccines:     vaccines,
		appointments: appointments,
		publisher:    publisher,
		notifier:     notifier,
		window:       window,
		logger:       logger,
		now:          defaultClock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch collects the owner's due reminders across all pets and publishes
// them as one event.
func (srv *reminderService) Dispatch(ctx context.Context, ownerID string) (int, error) {
	profile, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[*entity.UserProfile], error) {
		return srv.profileRepo.WatchProfile(ctx, ownerID)
	})
	if err != nil {
		return 0, storeError(err, "failed to load profile")
	}
	if profile == nil {
		return 0, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
	}

	pets, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Pet], error) {
		return srv.petRepo.WatchPetsByOwner(ctx, ownerID)
	})
	if err != nil {
		return 0, storeError(err, "failed to list pets")
	}

	now := srv.now()
	var reminders []entity.Reminder
	for _, pet := range pets {
		vaccines, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Vaccine], error) {
			return srv.vaccines.ListByPet(ctx, pet.ID)
		})
		if err != nil {
			return 0, storeError(err, "failed to list vaccines")
		}

		appointments, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Appointment], error) {
			return srv.appointments.ListByPet(ctx, pet.ID)
		})
		if err != nil {
			return 0, storeError(err, "failed to list appointments")
		}

		reminders = append(reminders, view.DueReminders(pet, vaccines, appointments, now, srv.window)...)
	}

	if len(reminders) == 0 {
		srv.log(ctx).Debug("No reminders due", slog.String("owner_id", ownerID))

		return 0, nil
	}
	if len(profile.DeviceTokens) == 0 {
		srv.log(ctx).Info("Reminders due but no device registered",
			slog.String("owner_id", ownerID),
			slog.Int("count", len(reminders)),
		)

		return len(reminders), nil
	}

	event := &service.ReminderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		OwnerID:   ownerID,
		Tokens:    profile.DeviceTokens,
		Reminders: reminders,
	}
	if err := srv.publisher.PublishReminderEvent(ctx, event); err != nil {
		return 0, errors.Wrap(err, "failed to publish reminder event")
	}

	srv.log(ctx).Info("Published reminder event",
		slog.String("event_id", event.EventID),
		slog.String("owner_id", ownerID),
		slog.Int("count", len(reminders)),
	)

	return len(reminders), nil
}

// Deliver pushes one notification per reminder to the event's devices. A failed
// send does not stop the remaining reminders; the failures are returned together
// once every reminder was tried, so a redelivered event repeats the ones that
// already went out. Tokens rejected by one send are skipped by the next.
func (srv *reminderService) Deliver(ctx context.Context, event *service.ReminderEvent) error {
	if event == nil {
		return domainerrors.NewValidationError("event required")
	}

	logger := srv.log(ctx).With(slog.String("event_id", event.EventID), slog.String("owner_id", event.OwnerID))
	if len(event.Tokens) == 0 {
		logger.Warn("Reminder event without device tokens")

		return nil
	}

	tokens := event.Tokens
	invalid := make(map[string]struct{})
	var sendErr error
	for _, r := range event.Reminders {
		if len(tokens) == 0 {
			logger.Warn("No valid device tokens left", slog.String("pet_id", r.PetID))

			break
		}

		title, body := reminderText(r)
		msg := &service.PushMessage{
			Title: title,
			Body:  body,
			Data: map[string]string{
				"event_id": event.EventID,
				"pet_id":   r.PetID,
				"kind":     string(r.Kind),
				"due_at":   r.DueAt.Format(time.RFC3339),
			},
		}

		result, err := srv.notifier.SendBatch(ctx, tokens, msg)
		if err != nil {
			logger.Error("Failed to send reminder notification", slog.String("pet_id", r.PetID), slog.Any("error", err))
			sendErr = multierr.Append(sendErr, errors.Wrapf(err, "pet %s", r.PetID))

			continue
		}
		for _, token := range result.InvalidTokens {
			invalid[token] = struct{}{}
		}
		if len(result.InvalidTokens) > 0 {
			tokens = slices.DeleteFunc(slices.Clone(tokens), func(token string) bool {
				_, bad := invalid[token]

				return bad
			})
		}

		logger.Info("Reminder notification sent",
			slog.String("pet_id", r.PetID),
			slog.Int("success", result.Success),
			slog.Int("failure", result.Failure),
			slog.Int("invalid_tokens", len(result.InvalidTokens)),
		)
	}

	srv.pruneTokens(ctx, event.OwnerID, invalid)

	if sendErr != nil {
		return errors.Wrap(sendErr, "failed to send reminder notifications")
	}

	return nil
}

// pruneTokens drops rejected tokens from the profile. Failure only costs a
// wasted send next time, so it is logged and not returned.
func (srv *reminderService) pruneTokens(ctx context.Context, ownerID string, invalid map[string]struct{}) {
	if len(invalid) == 0 {
		return
	}

	tokens := make([]string, 0, len(invalid))
	for token := range invalid {
		tokens = append(tokens, token)
	}
	slices.Sort(tokens)

	if err := srv.profileRepo.RemoveDeviceTokens(ctx, ownerID, tokens); err != nil {
		srv.log(ctx).Warn("Failed to remove rejected device tokens",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
	}
}

func reminderText(r entity.Reminder) (title, body string) {
	when := r.DueAt.Format("02/01/2006 15:04")
	switch r.Kind {
	case entity.KindVaccine:
		return fmt.Sprintf("Vacuna de %s", r.PetName), fmt.Sprintf("%s vence el %s", r.Title, when)
	default:
		return fmt.Sprintf("Cita de %s", r.PetName), fmt.Sprintf("%s el %s", r.Title, when)
	}
}
