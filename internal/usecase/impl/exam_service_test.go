package impl

import (
	"context"
	"io"
	"testing"
	"time"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/infra/persistence/model"
	mockSvc "petcare/internal/mocks/service"
	"petcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestExamService(t *testing.T, blobs ...*mockSvc.MockBlobStorage) (*examService, *fixtures, string) {
	f := newFixtures(t)

	var srv *examService
	if len(blobs) > 0 {
		srv = NewExamService(f.exams, f.pets, blobs[0], f.validator, f.logger).(*examService)
	} else {
		srv = NewExamService(f.exams, f.pets, f.blobs, f.validator, f.logger).(*examService)
	}
	srv.now = fixedClock

	return srv, f, f.seedPet(t, testOwner, "Luna")
}

func (srv *examService) get(t *testing.T, petID, examID string) *entity.Exam {
	t.Helper()

	exam, err := srv.current(context.Background(), testOwner, petID, examID)
	require.NoError(t, err)

	return exam
}

func storedFields(t *testing.T, f *fixtures, petID, examID string) map[string]any {
	t.Helper()

	s, err := f.store.StreamDocument(context.Background(), model.SubCollectionPath(petID, model.CollectionExams)+"/"+examID)
	require.NoError(t, err)
	doc := firstOf(t, s)
	require.NotNil(t, doc)

	return doc.Fields
}

func TestExamService_TogglePerformedOn_StampsNow(t *testing.T) {
	srv, _, petID := createTestExamService(t)
	ctx := context.Background()

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray", Performed: false})
	require.NoError(t, err)
	assert.Nil(t, srv.get(t, petID, id).PerformedAt)

	require.NoError(t, srv.SetPerformed(ctx, testOwner, petID, id, true))

	exam := srv.get(t, petID, id)
	assert.True(t, exam.Performed)
	require.NotNil(t, exam.PerformedAt)
	assert.WithinDuration(t, fixedNow, *exam.PerformedAt, time.Second)
	assert.Equal(t, entity.ExamPerformed, exam.State())
}

func TestExamService_TogglePerformedOff_RemovesField(t *testing.T) {
	srv, f, petID := createTestExamService(t)
	ctx := context.Background()
	performedAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray", Performed: true, PerformedAt: &performedAt})
	require.NoError(t, err)

	require.NoError(t, srv.SetPerformed(ctx, testOwner, petID, id, false))

	exam := srv.get(t, petID, id)
	assert.False(t, exam.Performed)
	assert.Nil(t, exam.PerformedAt)

	_, present := storedFields(t, f, petID, id)[model.FieldPerformedAt]
	assert.False(t, present, "performedAt must be absent, not null")
}

func TestExamService_TogglePerformedOn_KeepsExistingDate(t *testing.T) {
	srv, _, petID := createTestExamService(t)
	ctx := context.Background()
	performedAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray", Performed: true, PerformedAt: &performedAt})
	require.NoError(t, err)

	require.NoError(t, srv.SetPerformed(ctx, testOwner, petID, id, true))

	exam := srv.get(t, petID, id)
	require.NotNil(t, exam.PerformedAt)
	assert.True(t, exam.PerformedAt.Equal(performedAt))
}

func TestExamService_AddPerformedWithoutDate(t *testing.T) {
	srv, _, petID := createTestExamService(t)

	id, err := srv.Add(context.Background(), testOwner, petID, &usecase.ExamInput{Type: "Hemograma", Performed: true, Cost: 15000})
	require.NoError(t, err)

	exam := srv.get(t, petID, id)
	require.NotNil(t, exam.PerformedAt)
	assert.True(t, exam.PerformedAt.Equal(fixedNow))
	assert.Equal(t, 15000.0, exam.Cost)
}

func TestExamService_UploadResult_MarksPerformed(t *testing.T) {
	srv, f, petID := createTestExamService(t)
	ctx := context.Background()

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray"})
	require.NoError(t, err)

	url, err := srv.UploadFile(ctx, testOwner, petID, id, entity.ExamFileResult, entity.Upload{Name: "rx.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Contains(t, url, blobBase)

	exam := srv.get(t, petID, id)
	assert.Equal(t, url, exam.ResultURL)
	assert.True(t, exam.Performed)
	require.NotNil(t, exam.PerformedAt)
	assert.True(t, exam.PerformedAt.Equal(fixedNow))

	key, err := f.blobs.KeyFromURL(url)
	require.NoError(t, err)
	assert.Contains(t, key, "pets/"+testOwner+"/"+petID+"/exams/"+id+"/result-")
}

func TestExamService_UploadOrder_ReplacesPrevious(t *testing.T) {
	srv, f, petID := createTestExamService(t)
	ctx := context.Background()

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray"})
	require.NoError(t, err)

	first, err := srv.UploadFile(ctx, testOwner, petID, id, entity.ExamFileOrder, entity.Upload{Name: "orden.pdf", Data: []byte("1")})
	require.NoError(t, err)

	srv.now = func() time.Time { return fixedNow.Add(time.Minute) }
	second, err := srv.UploadFile(ctx, testOwner, petID, id, entity.ExamFileOrder, entity.Upload{Name: "orden.pdf", Data: []byte("2")})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	exam := srv.get(t, petID, id)
	assert.Equal(t, second, exam.OrderURL)
	assert.False(t, exam.Performed)

	key, err := f.blobs.KeyFromURL(first)
	require.NoError(t, err)
	exists, err := f.blobs.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExamService_UploadFile_Validation(t *testing.T) {
	srv, _, petID := createTestExamService(t)

	_, err := srv.UploadFile(context.Background(), testOwner, petID, "x", "other", entity.Upload{Data: []byte("1")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UploadFile(context.Background(), testOwner, petID, "x", entity.ExamFileOrder, entity.Upload{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestExamService_UploadFile_UpdateFailsAfterUpload(t *testing.T) {
	blobs := mockSvc.NewMockBlobStorage(t)
	srv, f, petID := createTestExamService(t, blobs)
	ctx := context.Background()

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray"})
	require.NoError(t, err)

	blobs.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
		RunAndReturn(func(context.Context, string, io.Reader, string) (string, error) {
			// The exam is removed while the file uploads.
			require.NoError(t, f.exams.Delete(ctx, petID, id))

			return blobBase + "/uploaded.pdf?alt=media", nil
		})

	_, err = srv.UploadFile(ctx, testOwner, petID, id, entity.ExamFileResult, entity.Upload{Name: "rx.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})

	var partial *domainerrors.PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []string{blobBase + "/uploaded.pdf?alt=media"}, partial.Completed())
}

func TestExamService_DeleteFile(t *testing.T) {
	srv, f, petID := createTestExamService(t)
	ctx := context.Background()

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray"})
	require.NoError(t, err)
	url, err := srv.UploadFile(ctx, testOwner, petID, id, entity.ExamFileOrder, entity.Upload{Name: "orden.pdf", Data: []byte("1")})
	require.NoError(t, err)

	require.NoError(t, srv.DeleteFile(ctx, testOwner, petID, id, entity.ExamFileOrder))

	assert.Empty(t, srv.get(t, petID, id).OrderURL)
	_, present := storedFields(t, f, petID, id)[model.FieldOrderURL]
	assert.False(t, present)

	key, err := f.blobs.KeyFromURL(url)
	require.NoError(t, err)
	exists, err := f.blobs.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	err = srv.DeleteFile(ctx, testOwner, petID, id, entity.ExamFileOrder)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestExamService_DeleteFile_BlobFailureIsPartial(t *testing.T) {
	blobs := mockSvc.NewMockBlobStorage(t)
	srv, _, petID := createTestExamService(t, blobs)
	ctx := context.Background()
	url := blobBase + "/result.pdf?alt=media"

	id, err := srv.Add(ctx, testOwner, petID, &usecase.ExamInput{Type: "X-ray"})
	require.NoError(t, err)
	require.NoError(t, srv.repo.Update(ctx, petID, id, entity.ExamPatch{ResultURL: &url}))

	blobs.EXPECT().DeleteByURL(ctx, url).Return(errors.New("bucket unreachable"))

	err = srv.DeleteFile(ctx, testOwner, petID, id, entity.ExamFileResult)

	var partial *domainerrors.PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []string{url}, partial.Completed())
	assert.Empty(t, srv.get(t, petID, id).ResultURL)
}
