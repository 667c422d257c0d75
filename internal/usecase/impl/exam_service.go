package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// examService implements the ExamUsecase interface.
type examService struct {
	*recordService[entity.Exam, entity.ExamPatch, usecase.ExamInput, usecase.ExamUpdate]

	blobs service.BlobStorage
}

// NewExamService is the constructor for examService.
func NewExamService(
	repo repository.ExamRepository,
	petRepo repository.PetRepository,
	blobs service.BlobStorage,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.ExamUsecase {
	return &examService{
		recordService: newRecordService(repo, petRepo, validator, logger, examRules),
		blobs:         blobs,
	}
}

var examRules = recordRules[entity.Exam, entity.ExamPatch, usecase.ExamInput, usecase.ExamUpdate]{
	name: "exam",
	build: func(_ string, in *usecase.ExamInput, now Clock) (*entity.Exam, error) {
		exam := &entity.Exam{
			Type:        in.Type,
			ScheduledAt: in.ScheduledAt,
			Performed:   in.Performed,
			Location:    in.Location,
			Cost:        in.Cost,
			Notes:       in.Notes,
		}
		if in.Performed {
			exam.PerformedAt = in.PerformedAt
			if exam.PerformedAt == nil {
				t := now()
				exam.PerformedAt = &t
			}
		}

		return exam, nil
	},
	patch: func(_ *entity.Exam, in *usecase.ExamUpdate) (entity.ExamPatch, error) {
		return entity.ExamPatch{
			Type:        in.Type,
			ScheduledAt: in.ScheduledAt,
			Location:    in.Location,
			Cost:        in.Cost,
			Notes:       in.Notes,
		}, nil
	},
}

// SetPerformed toggles the exam state. Marking it performed stamps now unless a
// date is already recorded; marking it scheduled removes the date field.
func (srv *examService) SetPerformed(ctx context.Context, ownerID, petID, examID string, performed bool) error {
	current, err := srv.current(ctx, ownerID, petID, examID)
	if err != nil {
		return err
	}

	patch := entity.ExamPatch{Performed: &performed}
	if performed {
		if current.PerformedAt == nil {
			t := srv.now()
			patch.PerformedAt = &t
		}
	} else {
		patch.ClearPerformedAt = true
	}

	return storeError(srv.repo.Update(ctx, petID, examID, patch), "failed to update exam state")
}

// UploadFile stores the document, then records its URL on the exam. A result
// document also marks the exam performed. The previous document of the same
// kind is deleted on a best-effort basis.
func (srv *examService) UploadFile(ctx context.Context, ownerID, petID, examID string, kind entity.ExamFileKind, file entity.Upload) (string, error) {
	if kind != entity.ExamFileOrder && kind != entity.ExamFileResult {
		return "", domainerrors.NewValidationError("kind oneof order result")
	}
	if len(file.Data) == 0 {
		return "", domainerrors.NewValidationError("file empty")
	}

	current, err := srv.current(ctx, ownerID, petID, examID)
	if err != nil {
		return "", err
	}

	now := srv.now()
	key := fmt.Sprintf("pets/%s/%s/exams/%s/%s-%d-%s", ownerID, petID, examID, kind, now.UnixMilli(), path.Base("/"+file.Name))
	url, err := srv.blobs.Upload(ctx, key, bytes.NewReader(file.Data), file.ContentType)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUpstreamFailed, err.Error())
	}

	var patch entity.ExamPatch
	previous := current.OrderURL
	if kind == entity.ExamFileResult {
		previous = current.ResultURL
		performed := true
		patch.ResultURL = &url
		patch.Performed = &performed
		if current.PerformedAt == nil {
			patch.PerformedAt = &now
		}
	} else {
		patch.OrderURL = &url
	}

	if err := srv.repo.Update(ctx, petID, examID, patch); err != nil {
		srv.logger.Warn("Exam file uploaded but not recorded", slog.String("examID", examID), slog.String("url", url))

		return "", domainerrors.NewPartialFailure("upload exam file", []string{url}, storeError(err, "failed to record exam file"))
	}

	if previous != "" && previous != url {
		if err := srv.blobs.DeleteByURL(ctx, previous); err != nil {
			srv.logger.Warn("Replaced exam file left in storage", slog.String("url", previous), slog.Any("error", err))
		}
	}

	return url, nil
}

// DeleteFile clears the document URL, then deletes the file. A failed file
// deletion does not restore the URL.
func (srv *examService) DeleteFile(ctx context.Context, ownerID, petID, examID string, kind entity.ExamFileKind) error {
	current, err := srv.current(ctx, ownerID, petID, examID)
	if err != nil {
		return err
	}

	var (
		url   string
		patch entity.ExamPatch
	)
	switch kind {
	case entity.ExamFileOrder:
		url, patch.ClearOrderURL = current.OrderURL, true
	case entity.ExamFileResult:
		url, patch.ClearResultURL = current.ResultURL, true
	default:
		return domainerrors.NewValidationError("kind oneof order result")
	}
	if url == "" {
		return errors.Wrap(domainerrors.ErrNotFound, "exam has no "+string(kind)+" file")
	}

	if err := srv.repo.Update(ctx, petID, examID, patch); err != nil {
		return storeError(err, "failed to clear exam file")
	}

	if err := srv.blobs.DeleteByURL(ctx, url); err != nil {
		srv.logger.Warn("Exam file left in storage", slog.String("url", url), slog.Any("error", err))

		return domainerrors.NewPartialFailure("delete exam file", []string{url}, err)
	}

	return nil
}
