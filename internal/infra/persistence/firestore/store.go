// Package firestore implements the document store on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"
	"strings"

	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/stream"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store implements repository.DocumentStore.
type Store struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewStore wraps a Firestore client.
func NewStore(client *firestore.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// CreateDocument implements repository.DocumentStore.
func (s *Store) CreateDocument(ctx context.Context, collection string, fields map[string]any, id string) (string, error) {
	col := s.client.Collection(collection)
	if col == nil {
		return "", errors.Errorf("invalid collection path %q", collection)
	}

	ref := col.NewDoc()
	if id != "" {
		ref = col.Doc(id)
	}

	data := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		data[k] = v
	}
	data[repository.FieldID] = ref.ID
	data[repository.FieldCreatedAt] = firestore.ServerTimestamp

	if _, err := ref.Set(ctx, data); err != nil {
		return "", mapError(err, "create "+ref.Path)
	}

	return ref.ID, nil
}

// UpdateDocument implements repository.DocumentStore.
func (s *Store) UpdateDocument(ctx context.Context, path string, updates ...repository.FieldUpdate) error {
	ref := s.client.Doc(path)
	if ref == nil {
		return errors.Errorf("invalid document path %q", path)
	}

	ops := make([]firestore.Update, 0, len(updates)+1)
	for _, u := range updates {
		ops = append(ops, toUpdate(u))
	}
	ops = append(ops, firestore.Update{Path: repository.FieldUpdatedAt, Value: firestore.ServerTimestamp})

	if _, err := ref.Update(ctx, ops); err != nil {
		return mapError(err, "update "+path)
	}

	return nil
}

// DeleteDocument implements repository.DocumentStore. Deleting a missing
// document succeeds.
func (s *Store) DeleteDocument(ctx context.Context, path string) error {
	ref := s.client.Doc(path)
	if ref == nil {
		return errors.Errorf("invalid document path %q", path)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return mapError(err, "delete "+path)
	}

	return nil
}

// StreamCollection implements repository.DocumentStore.
func (s *Store) StreamCollection(ctx context.Context, q repository.Query) (*stream.Stream[[]repository.Document], error) {
	col := s.client.Collection(q.Collection)
	if col == nil {
		return nil, errors.Errorf("invalid collection path %q", q.Collection)
	}

	query := col.Query
	for _, f := range q.Where {
		query = query.Where(f.Field, "==", f.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Descending {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}

	ctx, cancel := context.WithCancel(ctx)
	out := stream.New[[]repository.Document](cancel)
	it := query.Snapshots(ctx)

	go func() {
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				s.finish(ctx, out, err, q.Collection)

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				s.finish(ctx, out, err, q.Collection)

				return
			}

			result := make([]repository.Document, 0, len(docs))
			for _, d := range docs {
				result = append(result, repository.Document{ID: d.Ref.ID, Path: relativePath(d.Ref), Fields: d.Data()})
			}
			if !out.Emit(result) {
				return
			}
		}
	}()

	return out, nil
}

// StreamDocument implements repository.DocumentStore.
func (s *Store) StreamDocument(ctx context.Context, path string) (*stream.Stream[*repository.Document], error) {
	ref := s.client.Doc(path)
	if ref == nil {
		return nil, errors.Errorf("invalid document path %q", path)
	}

	ctx, cancel := context.WithCancel(ctx)
	out := stream.New[*repository.Document](cancel)
	it := ref.Snapshots(ctx)

	go func() {
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				s.finish(ctx, out, err, path)

				return
			}

			var doc *repository.Document
			if snap.Exists() {
				doc = &repository.Document{ID: ref.ID, Path: path, Fields: snap.Data()}
			}
			if !out.Emit(doc) {
				return
			}
		}
	}()

	return out, nil
}

// finish ends a stream; cancellation by the consumer is a clean end.
func (s *Store) finish(ctx context.Context, out interface{ Fail(error) }, err error, path string) {
	if ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
		out.Fail(nil)

		return
	}

	s.logger.Warn("Snapshot listener failed", slog.String("path", path), slog.Any("error", err))
	out.Fail(mapError(err, "listen "+path))
}

func toUpdate(u repository.FieldUpdate) firestore.Update {
	switch u.Op {
	case repository.OpDelete:
		return firestore.Update{Path: u.Field, Value: firestore.Delete}
	case repository.OpArrayUnion:
		return firestore.Update{Path: u.Field, Value: firestore.ArrayUnion(u.Values...)}
	case repository.OpArrayRemove:
		return firestore.Update{Path: u.Field, Value: firestore.ArrayRemove(u.Values...)}
	default:
		return firestore.Update{Path: u.Field, Value: u.Value}
	}
}

func mapError(err error, op string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return errors.Wrap(repository.ErrDocumentNotFound, op)
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Wrap(repository.ErrStoreUnavailable, op+": "+err.Error())
	default:
		return errors.Wrap(err, op)
	}
}

// relativePath strips the "projects/.../documents/" prefix from a reference path.
func relativePath(ref *firestore.DocumentRef) string {
	const marker = "/documents/"
	if i := strings.Index(ref.Path, marker); i >= 0 {
		return ref.Path[i+len(marker):]
	}

	return ref.Path
}
