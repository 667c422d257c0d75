package main

import (
	"context"
	"log/slog"
	"os"

	"petcare/config"
	"petcare/internal/delivery"
	"petcare/internal/delivery/worker"
	"petcare/internal/delivery/worker/handler"
	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	infrafirebase "petcare/internal/infra/firebase"
	logs "petcare/internal/infra/log"
	"petcare/internal/infra/notification"
	"petcare/internal/infra/persistence/firestore"
	"petcare/internal/infra/persistence/records"
	"petcare/internal/infra/pubsub"
	"petcare/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		func(cfg *config.Config) (*config.FirebaseConfig, *config.RemindersConfig) {
			return cfg.Firebase, cfg.Reminders
		},
		logs.New,
		context.Background,
		infrafirebase.NewApp,
		newDocumentStore,
	)
}

// newDocumentStore opens Firestore; the worker only reads the owner's profile
// and records, which an in-process store would never hold.
func newDocumentStore(ctx context.Context, lc fx.Lifecycle, app *firebase.App, logger *slog.Logger) (repository.DocumentStore, error) {
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

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			records.NewUserProfileRepository,
			records.NewAppointmentRepository,
			records.NewVaccineRepository,
			newPetRepository,
		),
	)
}

// newPetRepository reads pets only; the worker never touches gallery files
func newPetRepository(store repository.DocumentStore) repository.PetRepository {
	return records.NewPetRepository(store, nil)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			notification.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReminderService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker server", slog.Any("error", err))

				// Run the OnStop hooks so the Firestore and Pub/Sub clients close
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
