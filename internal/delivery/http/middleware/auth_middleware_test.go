package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/errors"
	mockusecase "petcare/internal/mocks/usecase"
	"petcare/internal/stream"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("signed-in identity reaches the handler", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		guard := mockusecase.NewMockAuthGuard(t)
		m := NewAuthMiddleware(authUC, guard, testLogger())

		ident := &entity.Identity{UID: "uid-1"}
		authUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(ident, nil).Once()
		guard.EXPECT().CanEnter(mock.Anything, mock.Anything).Return(true, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/pets", nil)
		req.Header.Set(echo.HeaderAuthorization, "bearer good-token")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		var gotOwner string
		err := m.Authenticate(func(c echo.Context) error {
			var err error
			gotOwner, err = OwnerID(c)

			return err
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "uid-1", gotOwner)
	})

	t.Run("anonymous request is sent to login", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		guard := mockusecase.NewMockAuthGuard(t)
		m := NewAuthMiddleware(authUC, guard, testLogger())

		authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated).Once()
		guard.EXPECT().CanEnter(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, authState *stream.Stream[*entity.Identity]) (bool, error) {
				require.NoError(t, NewRedirectNavigator().Navigate(ctx, "/login"))

				return false, nil
			}).Once()

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/pets", nil), rec)

		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(HeaderRedirect))
	})

	t.Run("identity provider failure is not a redirect", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		guard := mockusecase.NewMockAuthGuard(t)
		m := NewAuthMiddleware(authUC, guard, testLogger())

		authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, domainerrors.ErrUpstreamFailed).Once()

		req := httptest.NewRequest(http.MethodGet, "/pets", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(echo.Context) error { return nil })(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailed))
	})
}

func TestRedirectNavigator_RequiresHolder(t *testing.T) {
	nav := NewRedirectNavigator()

	require.Error(t, nav.Navigate(context.Background(), "/login"))

	r := &deliverycontext.Redirect{}
	require.NoError(t, nav.Navigate(deliverycontext.WithRedirect(context.Background(), r), "/login"))
	assert.Equal(t, "/login", r.Route)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken(""))
}
