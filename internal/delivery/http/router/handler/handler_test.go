package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/errors"
	mockusecase "petcare/internal/mocks/usecase"
	"petcare/internal/stream"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwner = "uid-1"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newContext builds an echo context for the signed-in test owner.
func newContext(req *http.Request, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	deliverycontext.SetIdentity(c, &entity.Identity{UID: testOwner})

	return c, rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPetHandler_CreatePet(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := mockusecase.NewMockPetUsecase(t)
		h := NewPetHandler(PetHandlerParams{PetUC: uc, Logger: testLogger()})

		uc.EXPECT().CreatePet(mock.Anything, testOwner, mock.MatchedBy(func(in *usecase.CreatePetInput) bool {
			return in.Name == "Luna" && in.Species == "perro"
		})).Return(&entity.Pet{ID: "pet-1", OwnerID: testOwner, Name: "Luna", Species: "perro"}, nil).Once()

		c, rec := newContext(jsonRequest(http.MethodPost, "/pets", `{"name":"Luna","species":"perro"}`), nil)
		require.NoError(t, h.CreatePet(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, "pet-1", data["id"])
		assert.Equal(t, []any{}, data["gallery"])
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := mockusecase.NewMockPetUsecase(t)
		h := NewPetHandler(PetHandlerParams{PetUC: uc, Logger: testLogger()})

		uc.EXPECT().CreatePet(mock.Anything, testOwner, mock.Anything).
			Return(nil, domainerrors.NewValidationError("name is required")).Once()

		c, rec := newContext(jsonRequest(http.MethodPost, "/pets", `{}`), nil)
		require.NoError(t, h.CreatePet(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
		assert.Equal(t, "name is required", errInfo["details"])
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewPetHandler(PetHandlerParams{PetUC: mockusecase.NewMockPetUsecase(t), Logger: testLogger()})

		c, rec := newContext(jsonRequest(http.MethodPost, "/pets", `{"name":`), nil)
		require.NoError(t, h.CreatePet(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		h := NewPetHandler(PetHandlerParams{PetUC: mockusecase.NewMockPetUsecase(t), Logger: testLogger()})

		e := echo.New()
		c := e.NewContext(jsonRequest(http.MethodPost, "/pets", `{}`), httptest.NewRecorder())

		var httpErr *echo.HTTPError
		require.ErrorAs(t, h.CreatePet(c), &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestPetHandler_GetPetNotFound(t *testing.T) {
	uc := mockusecase.NewMockPetUsecase(t)
	h := NewPetHandler(PetHandlerParams{PetUC: uc, Logger: testLogger()})

	uc.EXPECT().GetPet(mock.Anything, testOwner, "missing").Return(nil, domainerrors.ErrNotFound).Once()

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/pets/missing", nil), map[string]string{ParamPetID: "missing"})
	require.NoError(t, h.GetPet(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPetHandler_AddGalleryPhotos(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		fw, err := mw.CreateFormFile(formFieldPhotos, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("img-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	uc := mockusecase.NewMockPetUsecase(t)
	h := NewPetHandler(PetHandlerParams{PetUC: uc, Logger: testLogger()})

	uc.EXPECT().AddGalleryPhotos(mock.Anything, testOwner, "pet-1", mock.MatchedBy(func(files []entity.Upload) bool {
		return len(files) == 2 && files[0].Name == "a.jpg" && string(files[1].Data) == "img-b.jpg"
	})).Return(nil, domainerrors.NewPartialFailure("gallery upload", []string{"https://cdn/a.jpg"}, errors.New("bucket down"))).Once()

	req := httptest.NewRequest(http.MethodPost, "/pets/pet-1/gallery", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	c, rec := newContext(req, map[string]string{ParamPetID: "pet-1"})
	require.NoError(t, h.AddGalleryPhotos(c))

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	errInfo := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "PARTIAL_FAILURE", errInfo["code"])
	assert.Equal(t, map[string]any{"completed": []any{"https://cdn/a.jpg"}}, errInfo["details"])
}

func TestHistoryHandler_Calendar(t *testing.T) {
	appt := &entity.Appointment{ID: "a-1", Title: "Control", Start: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}

	tests := []struct {
		name       string
		query      string
		setup      func(uc *mockusecase.MockHistoryUsecase)
		wantStatus int
	}{
		{
			name:  "single day",
			query: "day=2024-03-05",
			setup: func(uc *mockusecase.MockHistoryUsecase) {
				uc.EXPECT().AppointmentsOnDay(mock.Anything, testOwner, "pet-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)).
					Return([]*entity.Appointment{appt}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "month view",
			query: "month=2024-03",
			setup: func(uc *mockusecase.MockHistoryUsecase) {
				uc.EXPECT().Calendar(mock.Anything, testOwner, "pet-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
					Return([]entity.DayAppointments{{Day: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Appointments: []*entity.Appointment{appt}}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "neither day nor month",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad day",
			query:      "day=05-03-2024",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown zone",
			query:      "month=2024-03&tz=Mars/Olympus",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockHistoryUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewHistoryHandler(HistoryHandlerParams{HistoryUC: uc, Logger: testLogger()})

			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/pets/pet-1/calendar?"+tt.query, nil), map[string]string{ParamPetID: "pet-1"})
			require.NoError(t, h.Calendar(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHistoryHandler_CalendarGroupsByDay(t *testing.T) {
	uc := mockusecase.NewMockHistoryUsecase(t)
	h := NewHistoryHandler(HistoryHandlerParams{HistoryUC: uc, Logger: testLogger()})

	uc.EXPECT().Calendar(mock.Anything, testOwner, "pet-1", mock.Anything).Return([]entity.DayAppointments{
		{Day: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Appointments: []*entity.Appointment{{ID: "a-1"}}},
		{Day: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Appointments: []*entity.Appointment{{ID: "a-2"}, {ID: "a-3"}}},
	}, nil).Once()

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/pets/pet-1/calendar?month=2024-03", nil), map[string]string{ParamPetID: "pet-1"})
	require.NoError(t, h.Calendar(c))

	days := decodeBody(t, rec)["data"].([]any)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-05", days[0].(map[string]any)["day"])
	assert.Len(t, days[1].(map[string]any)["appointments"], 2)
}

func TestHistoryHandler_FinanceStream(t *testing.T) {
	t.Run("pushes every summary", func(t *testing.T) {
		uc := mockusecase.NewMockHistoryUsecase(t)
		h := NewHistoryHandler(HistoryHandlerParams{HistoryUC: uc, Logger: testLogger()})

		uc.EXPECT().WatchFinance(mock.Anything, testOwner, "pet-1").
			Return(stream.Of(entity.FinanceSummary{Total: 5000}, entity.FinanceSummary{Total: 20000}), nil).Once()

		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/pets/pet-1/finance/stream", nil), map[string]string{ParamPetID: "pet-1"})
		require.NoError(t, h.FinanceStream(c))

		assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
		body := rec.Body.String()
		assert.Equal(t, 2, strings.Count(body, "event: finance\n"))
		assert.Contains(t, body, `"total":20000`)
	})

	t.Run("store failure ends with an error event", func(t *testing.T) {
		uc := mockusecase.NewMockHistoryUsecase(t)
		h := NewHistoryHandler(HistoryHandlerParams{HistoryUC: uc, Logger: testLogger()})

		s := stream.New[entity.FinanceSummary](nil)
		s.Fail(errors.New("firestore: unavailable"))
		uc.EXPECT().WatchFinance(mock.Anything, testOwner, "pet-1").Return(s, nil).Once()

		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/pets/pet-1/finance/stream", nil), map[string]string{ParamPetID: "pet-1"})
		require.NoError(t, h.FinanceStream(c))

		body := rec.Body.String()
		assert.Contains(t, body, "event: error\n")
		assert.NotContains(t, body, "firestore")
	})

	t.Run("pet not found before streaming", func(t *testing.T) {
		uc := mockusecase.NewMockHistoryUsecase(t)
		h := NewHistoryHandler(HistoryHandlerParams{HistoryUC: uc, Logger: testLogger()})

		uc.EXPECT().WatchFinance(mock.Anything, testOwner, "pet-1").Return(nil, domainerrors.ErrNotFound).Once()

		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/pets/pet-1/finance/stream", nil), map[string]string{ParamPetID: "pet-1"})
		require.NoError(t, h.FinanceStream(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "signed in", wantStatus: http.StatusOK},
		{name: "wrong password", err: domainerrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "AUTH_INVALID_CREDENTIALS"},
		{name: "unknown user", err: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: "AUTH_USER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockAuthUsecase(t)
			h := NewAuthHandler(AuthHandlerParams{AuthUC: uc, Logger: testLogger()})

			call := uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "secret"})
			if tt.err != nil {
				call.Return(nil, tt.err).Once()
			} else {
				call.Return(&entity.Identity{UID: testOwner, Email: "ana@example.com", IDToken: "id-token"}, nil).Once()
			}

			c, rec := newContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secret"}`), nil)
			require.NoError(t, h.Login(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error"].(map[string]any)["code"])

				return
			}
			assert.Equal(t, testOwner, body["data"].(map[string]any)["uid"])
		})
	}
}
