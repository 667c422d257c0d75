package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"petcare/internal/domain/repository"
	"petcare/internal/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	n := 0

	return New(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++

			return fmt.Sprintf("id%d", n)
		}),
	)
}

// next waits for the next snapshot on s.
func next[T any](t *testing.T, s *stream.Stream[T]) T {
	t.Helper()

	select {
	case v, ok := <-s.Updates():
		require.True(t, ok, "stream ended")

		return v
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}

	var zero T

	return zero
}

func TestStore_CreateThenStreamDocument(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	id, err := s.CreateDocument(ctx, "pets", map[string]any{"name": "Luna"}, "")
	require.NoError(t, err)
	assert.Equal(t, "id1", id)

	st, err := s.StreamDocument(ctx, "pets/"+id)
	require.NoError(t, err)
	defer st.Stop()

	doc := next(t, st)
	require.NotNil(t, doc)
	assert.Equal(t, map[string]any{
		"name":                    "Luna",
		repository.FieldID:        "id1",
		repository.FieldCreatedAt: fixedNow,
	}, doc.Fields)
}

func TestStore_CreateWithIDUpserts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.CreateDocument(ctx, "users", map[string]any{"name": "Ana", "phone": "1"}, "u1")
	require.NoError(t, err)
	id, err := s.CreateDocument(ctx, "users", map[string]any{"name": "Ana María"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	doc := s.lookup("users/u1")
	require.NotNil(t, doc)
	assert.Equal(t, "Ana María", doc.Fields["name"])
	assert.NotContains(t, doc.Fields, "phone")
}

func TestStore_UpdateMissingDocument(t *testing.T) {
	s := newTestStore()

	err := s.UpdateDocument(context.Background(), "pets/missing", repository.Set("name", "x"))

	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestStore_UpdateStampsAndDeletesFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id, err := s.CreateDocument(ctx, "pets/p1/exams", map[string]any{
		"performed":   true,
		"performedAt": fixedNow,
	}, "")
	require.NoError(t, err)

	err = s.UpdateDocument(ctx, "pets/p1/exams/"+id,
		repository.Set("performed", false),
		repository.DeleteField("performedAt"),
	)
	require.NoError(t, err)

	doc := s.lookup("pets/p1/exams/" + id)
	require.NotNil(t, doc)
	assert.Equal(t, false, doc.Fields["performed"])
	assert.NotContains(t, doc.Fields, "performedAt")
	assert.Equal(t, fixedNow, doc.Fields[repository.FieldUpdatedAt])
}

func TestStore_ArrayUnionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id, err := s.CreateDocument(ctx, "pets", map[string]any{"gallery": []string{"a"}}, "")
	require.NoError(t, err)
	path := "pets/" + id

	require.NoError(t, s.UpdateDocument(ctx, path, repository.ArrayUnion("gallery", "b")))
	require.NoError(t, s.UpdateDocument(ctx, path, repository.ArrayUnion("gallery", "b")))

	assert.Equal(t, []any{"a", "b"}, s.lookup(path).Fields["gallery"])

	require.NoError(t, s.UpdateDocument(ctx, path, repository.ArrayRemove("gallery", "a", "zzz")))

	assert.Equal(t, []any{"b"}, s.lookup(path).Fields["gallery"])
}

func TestStore_DeleteMissingDocument(t *testing.T) {
	err := newTestStore().DeleteDocument(context.Background(), "pets/nope")

	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestStore_StreamCollectionOrderingAndFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	_, err := s.CreateDocument(ctx, "pets", map[string]any{"ownerId": "u1", "born": day(2)}, "a")
	require.NoError(t, err)
	_, err = s.CreateDocument(ctx, "pets", map[string]any{"ownerId": "u2", "born": day(3)}, "b")
	require.NoError(t, err)
	_, err = s.CreateDocument(ctx, "pets", map[string]any{"ownerId": "u1", "born": day(5)}, "c")
	require.NoError(t, err)
	_, err = s.CreateDocument(ctx, "pets", map[string]any{"ownerId": "u1"}, "no-order-field")
	require.NoError(t, err)
	_, err = s.CreateDocument(ctx, "pets/a/vaccines", map[string]any{"ownerId": "u1", "born": day(9)}, "nested")
	require.NoError(t, err)

	st, err := s.StreamCollection(ctx, repository.Query{
		Collection: "pets",
		Where:      []repository.Filter{{Field: "ownerId", Value: "u1"}},
		OrderBy:    "born",
		Descending: true,
	})
	require.NoError(t, err)
	defer st.Stop()

	docs := next(t, st)
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"c", "a"}, ids)
}

func TestStore_StreamCollectionEmitsOnChange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	st, err := s.StreamCollection(ctx, repository.Query{Collection: "pets/p1/vaccines"})
	require.NoError(t, err)
	defer st.Stop()

	assert.Empty(t, next(t, st))

	_, err = s.CreateDocument(ctx, "pets/p1/vaccines", map[string]any{"type": "rabia"}, "")
	require.NoError(t, err)

	docs := next(t, st)
	require.Len(t, docs, 1)
	assert.Equal(t, "rabia", docs[0].Fields["type"])
}

func TestStore_StreamDocumentEmitsNilAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id, err := s.CreateDocument(ctx, "pets", map[string]any{"name": "Luna"}, "")
	require.NoError(t, err)

	st, err := s.StreamDocument(ctx, "pets/"+id)
	require.NoError(t, err)
	defer st.Stop()
	require.NotNil(t, next(t, st))

	require.NoError(t, s.DeleteDocument(ctx, "pets/"+id))

	assert.Nil(t, next(t, st))
}

func TestStore_StopUnsubscribes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	st, err := s.StreamCollection(ctx, repository.Query{Collection: "pets"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.SubscriberCount())

	st.Stop()

	assert.Equal(t, 0, s.SubscriberCount())
	_, err = s.CreateDocument(ctx, "pets", map[string]any{}, "")
	require.NoError(t, err)
}

func TestStore_Offline(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.SetOffline(true)

	_, err := s.CreateDocument(ctx, "pets", map[string]any{}, "")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = s.StreamCollection(ctx, repository.Query{Collection: "pets"})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}
