package delivery

import "context"

// Delivery is an inbound transport started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
