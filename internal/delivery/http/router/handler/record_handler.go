package handler

import (
	"net/http"

	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/response"
	"petcare/internal/domain/entity"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ParamRecordID is the path parameter holding a sub-record ID
const ParamRecordID = "id"

// RecordHandler serves the CRUD routes of one medical sub-record collection.
type RecordHandler[T any, C any, U any] struct {
	uc     usecase.RecordUsecase[T, C, U]
	render func(*T) any
}

type (
	AppointmentHandler = RecordHandler[entity.Appointment, usecase.AppointmentInput, usecase.AppointmentUpdate]
	VaccineHandler     = RecordHandler[entity.Vaccine, usecase.VaccineInput, usecase.VaccineUpdate]
	MedicationHandler  = RecordHandler[entity.Medication, usecase.MedicationInput, usecase.MedicationUpdate]
)

func NewAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, render: newAppointmentResponse}
}

func NewVaccineHandler(uc usecase.VaccineUsecase) *VaccineHandler {
	return &VaccineHandler{uc: uc, render: newVaccineResponse}
}

func NewMedicationHandler(uc usecase.MedicationUsecase) *MedicationHandler {
	return &MedicationHandler{uc: uc, render: newMedicationResponse}
}

// List returns every record of the pet.
func (h *RecordHandler[T, C, U]) List(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Request().Context(), ownerID, c.Param(ParamPetID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(items, h.render))
}

// Add creates a record and returns its ID.
func (h *RecordHandler[T, C, U]) Add(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var input C
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	id, err := h.uc.Add(c.Request().Context(), ownerID, c.Param(ParamPetID), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, IDResponse{ID: id})
}

// Update applies a partial update.
func (h *RecordHandler[T, C, U]) Update(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var input U
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record update")
	}

	if err := h.uc.Update(c.Request().Context(), ownerID, c.Param(ParamPetID), c.Param(ParamRecordID), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a record.
func (h *RecordHandler[T, C, U]) Delete(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, c.Param(ParamPetID), c.Param(ParamRecordID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ExamHandler adds the exam state and document routes to the record routes.
type ExamHandler struct {
	*RecordHandler[entity.Exam, usecase.ExamInput, usecase.ExamUpdate]

	examUC usecase.ExamUsecase
}

func NewExamHandler(uc usecase.ExamUsecase) *ExamHandler {
	return &ExamHandler{
		RecordHandler: &RecordHandler[entity.Exam, usecase.ExamInput, usecase.ExamUpdate]{uc: uc, render: newExamResponse},
		examUC:        uc,
	}
}

// PerformedRequest toggles an exam between scheduled and performed
type PerformedRequest struct {
	Performed bool `json:"performed"`
}

// SetPerformed moves the exam to performed or back to scheduled.
func (h *ExamHandler) SetPerformed(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var req PerformedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid performed state")
	}

	if err := h.examUC.SetPerformed(c.Request().Context(), ownerID, c.Param(ParamPetID), c.Param(ParamRecordID), req.Performed); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadFile stores the multipart "file" as the exam order or result.
func (h *ExamHandler) UploadFile(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	kind, ok := examFileKind(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "kind must be order or result")
	}

	fh, err := c.FormFile(formFieldFile)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "file is required")
	}
	file, err := readUpload(fh)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid file upload")
	}

	url, err := h.examUC.UploadFile(c.Request().Context(), ownerID, c.Param(ParamPetID), c.Param(ParamRecordID), kind, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, URLResponse{URL: url})
}

// DeleteFile removes the exam order or result document.
func (h *ExamHandler) DeleteFile(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	kind, ok := examFileKind(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "kind must be order or result")
	}

	if err := h.examUC.DeleteFile(c.Request().Context(), ownerID, c.Param(ParamPetID), c.Param(ParamRecordID), kind); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func examFileKind(c echo.Context) (entity.ExamFileKind, bool) {
	switch kind := entity.ExamFileKind(c.Param("kind")); kind {
	case entity.ExamFileOrder, entity.ExamFileResult:
		return kind, true
	default:
		return "", false
	}
}
