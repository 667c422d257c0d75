package context

import (
	"context"

	"petcare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for storing the authenticated identity.
	KeyIdentity ContextKey = "identity"

	// KeyRedirect is the key for storing the navigation target of a request.
	KeyRedirect ContextKey = "redirect"
)

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, ident *entity.Identity) {
	c.Set(string(KeyIdentity), ident)
}

// GetIdentity returns the authenticated identity or nil.
func GetIdentity(c echo.Context) *entity.Identity {
	ident, _ := c.Get(string(KeyIdentity)).(*entity.Identity)

	return ident
}

// Redirect records where a request should be sent instead of being served.
type Redirect struct {
	Route string
}

// WithRedirect returns a new context carrying r.
func WithRedirect(ctx context.Context, r *Redirect) context.Context {
	return context.WithValue(ctx, KeyRedirect, r)
}

// GetRedirect returns the request's redirect holder or nil.
func GetRedirect(ctx context.Context) *Redirect {
	r, _ := ctx.Value(KeyRedirect).(*Redirect)

	return r
}
