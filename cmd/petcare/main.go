package main

import (
	"context"
	"log/slog"
	"os"

	"petcare/config"
	"petcare/internal/delivery"
	"petcare/internal/delivery/http"
	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/router/handler"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/infra/assistant"
	"petcare/internal/infra/auth"
	infrafirebase "petcare/internal/infra/firebase"
	logs "petcare/internal/infra/log"
	"petcare/internal/infra/notification"
	"petcare/internal/infra/persistence/firestore"
	"petcare/internal/infra/persistence/memory"
	"petcare/internal/infra/persistence/records"
	"petcare/internal/infra/places"
	"petcare/internal/infra/pubsub"
	"petcare/internal/infra/qrcode"
	"petcare/internal/infra/storage"
	"petcare/internal/usecase/impl"
	"petcare/internal/validation"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sectionConfigs,
		infrafirebase.NewApp,
		newDocumentStore,
		newBlobStorage,
		validation.New,
	)
}

// sectionConfigs exposes the config sections taken by infra constructors
func sectionConfigs(cfg *config.Config) (
	*config.FirebaseConfig,
	*config.PlacesConfig,
	*config.AssistantConfig,
	*config.RemindersConfig,
) {
	return cfg.Firebase, cfg.Places, cfg.Assistant, cfg.Reminders
}

// newDocumentStore opens the store selected by store.driver
func newDocumentStore(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, app *firebase.App, logger *slog.Logger) (repository.DocumentStore, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("Using the in-process document store; data is lost on restart")

		return memory.New(), nil
	}
	if cfg.Store.Driver != config.StoreDriverFirestore {
		return nil, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return firestore.NewStore(client, logger), nil
}

func newBlobStorage(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (service.BlobStorage, error) {
	blobs, err := storage.Open(ctx, cfg.Blob)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return blobs.Close()
		},
	})

	return blobs, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			records.NewPetRepository,
			records.NewUserProfileRepository,
			records.NewAppointmentRepository,
			records.NewVaccineRepository,
			records.NewExamRepository,
			records.NewMedicationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewFirebaseIdentity,
			notification.NewFirebaseService,
			places.NewPlacesClient,
			assistant.NewGeminiGenerator,
			newQRCodeService,
			middleware.NewRedirectNavigator,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAuthGuard,
			impl.NewPetService,
			impl.NewProfileService,
			impl.NewAppointmentService,
			impl.NewVaccineService,
			impl.NewExamService,
			impl.NewMedicationService,
			impl.NewHistoryService,
			impl.NewPlacesService,
			impl.NewAssistantService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPetHandler,
			handler.NewAppointmentHandler,
			handler.NewVaccineHandler,
			handler.NewExamHandler,
			handler.NewMedicationHandler,
			handler.NewHistoryHandler,
			handler.NewProfileHandler,
			handler.NewCompanionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
