package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/response"
	"petcare/internal/domain/entity"
	"petcare/internal/errors"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// ParamPetID is the path parameter holding the pet ID
	ParamPetID = "petId"

	formFieldPhotos = "photos"
	formFieldFile   = "file"
)

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler holds dependencies for pet and gallery handlers.
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler.
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// CreatePet registers a pet for the signed-in owner.
func (h *PetHandler) CreatePet(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var input usecase.CreatePetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.petUC.CreatePet(c.Request().Context(), ownerID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPetResponse(pet))
}

// ListPets returns the owner's pets.
func (h *PetHandler) ListPets(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	pets, err := h.petUC.ListPets(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*PetResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, newPetResponse(p))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetPet returns one pet.
func (h *PetHandler) GetPet(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), ownerID, c.Param(ParamPetID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPetResponse(pet))
}

// UpdatePet applies a partial update.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet update")
	}

	if err := h.petUC.UpdatePet(c.Request().Context(), ownerID, c.Param(ParamPetID), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddGalleryPhotos uploads the multipart "photos" files to the gallery.
func (h *PetHandler) AddGalleryPhotos(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	files, err := readUploads(c, formFieldPhotos)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo upload")
	}

	urls, err := h.petUC.AddGalleryPhotos(c.Request().Context(), ownerID, c.Param(ParamPetID), files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, URLsResponse{URLs: urls})
}

// RemoveGalleryPhoto removes the photo given by the url query parameter.
func (h *PetHandler) RemoveGalleryPhoto(c echo.Context) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	if err := h.petUC.RemoveGalleryPhoto(c.Request().Context(), ownerID, c.Param(ParamPetID), c.QueryParam("url")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// readUploads reads every file of a multipart field into memory.
func readUploads(c echo.Context, field string) ([]entity.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	headers := form.File[field]
	uploads := make([]entity.Upload, 0, len(headers))
	for _, fh := range headers {
		upload, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

func readUpload(fh *multipart.FileHeader) (entity.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.Upload{}, errors.WithStack(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return entity.Upload{}, errors.WithStack(err)
	}

	return entity.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
