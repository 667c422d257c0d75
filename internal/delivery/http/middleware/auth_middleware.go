package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/delivery/http/response"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderRedirect tells the client where to navigate after a rejected request.
const HeaderRedirect = "X-Redirect-To"

// AuthMiddleware verifies the bearer ID token and runs the route guard.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	guard  usecase.AuthGuard
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, guard usecase.AuthGuard, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, guard: guard, logger: logger}
}

// Authenticate resolves the request identity and lets the guard decide. A
// rejected request gets 401 and the login route in HeaderRedirect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		ident, err := m.auth.Authenticate(ctx, token)
		if err != nil && !errors.Is(err, domainerrors.ErrUnauthenticated) {
			return err
		}

		redirect := &deliverycontext.Redirect{}
		ctx = deliverycontext.WithRedirect(ctx, redirect)

		ok, err := m.guard.CanEnter(ctx, stream.Of(ident))
		if err != nil {
			return err
		}
		if !ok {
			c.Response().Header().Set(HeaderRedirect, redirect.Route)

			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
		}

		deliverycontext.SetIdentity(c, ident)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("uid", ident.UID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}

// redirectNavigator records the guard's navigation in the request's redirect
// holder instead of moving a client screen.
type redirectNavigator struct{}

// NewRedirectNavigator returns the navigator used by the HTTP route guard.
func NewRedirectNavigator() service.Navigator {
	return redirectNavigator{}
}

func (redirectNavigator) Navigate(ctx context.Context, route string) error {
	r := deliverycontext.GetRedirect(ctx)
	if r == nil {
		return errors.New("no redirect holder in request context")
	}
	r.Route = route

	return nil
}

// OwnerID returns the UID of the authenticated identity. Routes behind
// Authenticate always have one.
func OwnerID(c echo.Context) (string, error) {
	ident := deliverycontext.GetIdentity(c)
	if ident == nil || ident.UID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, domainerrors.ErrUnauthenticated.Message())
	}

	return ident.UID, nil
}
