package handler

import (
	"log/slog"
	"net/http"

	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/response"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for owner profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the signed-in owner's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	uid, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}

// UpdateProfile applies a partial update.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	uid, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := h.profileUC.UpdateProfile(c.Request().Context(), uid, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterDevice adds a push notification token.
func (h *ProfileHandler) RegisterDevice(c echo.Context) error {
	uid, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var input usecase.RegisterDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := h.profileUC.RegisterDevice(c.Request().Context(), uid, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ContactCardQR returns the lost-pet contact card as a PNG QR code.
func (h *ProfileHandler) ContactCardQR(c echo.Context) error {
	uid, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.ContactCardQR(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
