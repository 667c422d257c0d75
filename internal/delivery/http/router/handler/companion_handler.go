package handler

import (
	"log/slog"
	"net/http"

	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/response"
	"petcare/internal/domain/entity"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompanionHandlerParams holds dependencies for CompanionHandler, injected by Fx.
type CompanionHandlerParams struct {
	fx.In

	PlacesUC    usecase.PlacesUsecase
	AssistantUC usecase.AssistantUsecase
	ReminderUC  usecase.ReminderUsecase
	Logger      *slog.Logger
}

// CompanionHandler serves the nearby places, the assistant chat and the
// reminder dispatch.
type CompanionHandler struct {
	placesUC    usecase.PlacesUsecase
	assistantUC usecase.AssistantUsecase
	reminderUC  usecase.ReminderUsecase
	logger      *slog.Logger
}

// NewCompanionHandler is the constructor for CompanionHandler.
func NewCompanionHandler(params CompanionHandlerParams) *CompanionHandler {
	return &CompanionHandler{
		placesUC:    params.PlacesUC,
		assistantUC: params.AssistantUC,
		reminderUC:  params.ReminderUC,
		logger:      params.Logger,
	}
}

// NearbyPlaces handles GET /places/nearby?lat=&lng=&category=
func (h *CompanionHandler) NearbyPlaces(c echo.Context) error {
	var input usecase.NearbyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "lat and lng must be numbers")
	}

	places, err := h.placesUC.Nearby(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if places == nil {
		places = []entity.Place{}
	}

	return response.Success(c, http.StatusOK, places)
}

// StartConversation returns a fresh assistant conversation.
func (h *CompanionHandler) StartConversation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.assistantUC.Start())
}

// ReplyRequest carries the client-held conversation and the next message
type ReplyRequest struct {
	Conversation *entity.Conversation `json:"conversation"`
	Message      string               `json:"message"`
}

// Reply advances the conversation by one message.
func (h *CompanionHandler) Reply(c echo.Context) error {
	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assistant message")
	}

	conv, err := h.assistantUC.Reply(c.Request().Context(), req.Conversation, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conv)
}

// DispatchResponse reports how many reminders were due
type DispatchResponse struct {
	Due int `json:"due"`
}

// DispatchReminders publishes the owner's due reminders.
func (h *CompanionHandler) DispatchReminders(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	due, err := h.reminderUC.Dispatch(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, DispatchResponse{Due: due})
}
