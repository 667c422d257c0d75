package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
	"petcare/internal/infra/persistence/memory"
	"petcare/internal/infra/persistence/records"
	"petcare/internal/infra/storage"
	"petcare/internal/stream"
	"petcare/internal/validation"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const (
	testOwner = "owner-1"
	blobBase  = "https://files.test/o"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// fixtures wires the repositories over an in-memory store and bucket.
type fixtures struct {
	store        *memory.Store
	blobs        *storage.BlobStorage
	pets         repository.PetRepository
	profiles     repository.UserProfileRepository
	appointments repository.AppointmentRepository
	vaccines     repository.VaccineRepository
	exams        repository.ExamRepository
	medications  repository.MedicationRepository
	validator    *validation.Validator
	logger       *slog.Logger
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	store := memory.New(memory.WithClock(func() time.Time { return fixedNow }))
	blobs := storage.New(memblob.OpenBucket(nil), blobBase)
	t.Cleanup(func() { _ = blobs.Close() })

	return &fixtures{
		store:        store,
		blobs:        blobs,
		pets:         records.NewPetRepository(store, blobs),
		profiles:     records.NewUserProfileRepository(store),
		appointments: records.NewAppointmentRepository(store),
		vaccines:     records.NewVaccineRepository(store),
		exams:        records.NewExamRepository(store),
		medications:  records.NewMedicationRepository(store),
		validator:    validation.New(),
		logger:       testLogger(),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func fixedClock() time.Time { return fixedNow }

func (f *fixtures) seedPet(t *testing.T, ownerID, name string) string {
	t.Helper()

	id, err := f.pets.CreatePet(context.Background(), &entity.Pet{OwnerID: ownerID, Name: name, Species: "perro"})
	require.NoError(t, err)

	return id
}

func (f *fixtures) seedProfile(t *testing.T, profile *entity.UserProfile) {
	t.Helper()

	require.NoError(t, f.profiles.SaveProfile(context.Background(), profile))
}

func firstOf[T any](t *testing.T, s *stream.Stream[T]) T {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	v, err := stream.First(ctx, s)
	require.NoError(t, err)

	return v
}

// nextOf waits for the first emission that satisfies ok, leaving the stream open.
func nextOf[T any](t *testing.T, s *stream.Stream[T], ok func(T) bool) T {
	t.Helper()

	timeout := time.After(time.Second)
	for {
		select {
		case v, open := <-s.Updates():
			require.True(t, open, "stream ended: %v", s.Err())
			if ok(v) {
				return v
			}
		case <-timeout:
			require.FailNow(t, "no matching emission")
		}
	}
}

func ptr[T any](v T) *T { return &v }

func mustWatchProfile(t *testing.T, f *fixtures, uid string) *stream.Stream[*entity.UserProfile] {
	t.Helper()

	s, err := f.profiles.WatchProfile(context.Background(), uid)
	require.NoError(t, err)

	return s
}
