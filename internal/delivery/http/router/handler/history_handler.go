package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/response"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/errors"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"

	eventFinance = "finance"
	eventError   = "error"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler serves the calendar, finance and status views.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler.
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// Calendar returns the appointments of ?day=YYYY-MM-DD, or the month view of
// ?month=YYYY-MM grouped by day. ?tz= selects the IANA zone, UTC by default.
func (h *HistoryHandler) Calendar(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(c.QueryParam("tz"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown time zone")
	}

	ctx := c.Request().Context()
	petID := c.Param(ParamPetID)

	if day := c.QueryParam("day"); day != "" {
		t, err := time.ParseInLocation(dayLayout, day, loc)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "day must be YYYY-MM-DD")
		}

		list, err := h.historyUC.AppointmentsOnDay(ctx, ownerID, petID, t)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, DayResponse{
			Day:          day,
			Appointments: mapAll(list, newAppointmentResponse),
		})
	}

	month := c.QueryParam("month")
	if month == "" {
		return response.BadRequest(c, "INVALID_INPUT", "day or month is required")
	}
	t, err := time.ParseInLocation(monthLayout, month, loc)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "month must be YYYY-MM")
	}

	days, err := h.historyUC.Calendar(ctx, ownerID, petID, t)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]DayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DayResponse{
			Day:          d.Day.Format(dayLayout),
			Appointments: mapAll(d.Appointments, newAppointmentResponse),
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// Finance returns the expense summary.
func (h *HistoryHandler) Finance(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	summary, err := h.historyUC.Finance(c.Request().Context(), ownerID, c.Param(ParamPetID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// FinanceStream pushes the recomputed summary as server-sent events until the
// client disconnects or the underlying stream ends.
func (h *HistoryHandler) FinanceStream(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	s, err := h.historyUC.WatchFinance(ctx, ownerID, c.Param(ParamPetID))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer s.Stop()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	for {
		select {
		case <-ctx.Done():
			return nil
		case summary, ok := <-s.Updates():
			if !ok {
				if err := s.Err(); err != nil {
					logger.Warn("Finance stream failed", slog.Any("error", err))

					return writeEvent(w, eventError, map[string]string{"message": domainerrors.ErrStoreUnavailable.Message()})
				}

				return nil
			}
			if err := writeEvent(w, eventFinance, summary); err != nil {
				logger.Debug("Finance stream client gone", slog.Any("error", err))

				return nil
			}
		}
	}
}

func writeEvent(w *echo.Response, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return errors.WithStack(err)
	}
	w.Flush()

	return nil
}

// MedicationStatusResponse is the status of one medication
type MedicationStatusResponse struct {
	ID     string                  `json:"id"`
	Status entity.MedicationStatus `json:"status"`
}

// MedicationStatus classifies a medication at the current time.
func (h *HistoryHandler) MedicationStatus(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	id := c.Param(ParamRecordID)
	status, err := h.historyUC.MedicationStatus(c.Request().Context(), ownerID, c.Param(ParamPetID), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MedicationStatusResponse{ID: id, Status: status})
}
