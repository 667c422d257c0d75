// Package firebase bootstraps the process-wide Firebase app shared by the
// document store, identity and messaging clients.
package firebase

import (
	"context"

	"petcare/config"
	"petcare/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from explicit configuration.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, ClientOptions(cfg)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// ClientOptions returns the options used to reach Google APIs outside the
// Firebase SDK with the same credentials.
func ClientOptions(cfg *config.FirebaseConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	return opts
}
