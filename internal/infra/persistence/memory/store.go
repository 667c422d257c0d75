// Package memory implements an in-process document store with live queries.
// It mirrors the remote store's semantics closely enough for development and tests.
package memory

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/stream"

	"github.com/google/uuid"
)

type subscriber struct {
	notify func()
}

// Store implements repository.DocumentStore backed by process memory.
type Store struct {
	mu      sync.RWMutex
	docs    map[string]map[string]any // path -> fields
	offline bool

	// notifyMu serialises snapshot computation and emission so that a later
	// snapshot is never overtaken by an earlier one.
	notifyMu sync.Mutex
	subs     map[int]*subscriber
	nextSub  int

	now   func() time.Time
	newID func() string
}

// Option customises a Store.
type Option func(*Store)

// WithClock sets the server clock used for creation/update stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the generator for allocated document IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns an empty in-memory document store.
func New(opts ...Option) *Store {
	s := &Store{
		docs:  make(map[string]map[string]any),
		subs:  make(map[int]*subscriber),
		now:   time.Now,
		newID: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:20] },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetOffline makes every subsequent call fail with ErrStoreUnavailable.
func (s *Store) SetOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offline = offline
}

// CreateDocument implements repository.DocumentStore.
func (s *Store) CreateDocument(_ context.Context, collection string, fields map[string]any, id string) (string, error) {
	s.mu.Lock()
	if s.offline {
		s.mu.Unlock()

		return "", errors.WithStack(repository.ErrStoreUnavailable)
	}
	if id == "" {
		id = s.newID()
	}
	doc := cloneFields(fields)
	doc[repository.FieldID] = id
	doc[repository.FieldCreatedAt] = s.now()
	s.docs[joinPath(collection, id)] = doc
	s.mu.Unlock()

	s.broadcast()

	return id, nil
}

// UpdateDocument implements repository.DocumentStore.
func (s *Store) UpdateDocument(_ context.Context, path string, updates ...repository.FieldUpdate) error {
	s.mu.Lock()
	if s.offline {
		s.mu.Unlock()

		return errors.WithStack(repository.ErrStoreUnavailable)
	}
	doc, ok := s.docs[path]
	if !ok {
		s.mu.Unlock()

		return errors.Wrapf(repository.ErrDocumentNotFound, "update %s", path)
	}
	for _, u := range updates {
		applyUpdate(doc, u)
	}
	doc[repository.FieldUpdatedAt] = s.now()
	s.mu.Unlock()

	s.broadcast()

	return nil
}

// DeleteDocument implements repository.DocumentStore. Unlike the remote store it
// reports ErrDocumentNotFound for a missing document.
func (s *Store) DeleteDocument(_ context.Context, path string) error {
	s.mu.Lock()
	if s.offline {
		s.mu.Unlock()

		return errors.WithStack(repository.ErrStoreUnavailable)
	}
	if _, ok := s.docs[path]; !ok {
		s.mu.Unlock()

		return errors.Wrapf(repository.ErrDocumentNotFound, "delete %s", path)
	}
	delete(s.docs, path)
	s.mu.Unlock()

	s.broadcast()

	return nil
}

// StreamCollection implements repository.DocumentStore.
func (s *Store) StreamCollection(_ context.Context, query repository.Query) (*stream.Stream[[]repository.Document], error) {
	if s.isOffline() {
		return nil, errors.WithStack(repository.ErrStoreUnavailable)
	}

	var st *stream.Stream[[]repository.Document]
	s.subscribe(func() { st.Emit(s.runQuery(query)) }, func(unsubscribe func()) {
		st = stream.New[[]repository.Document](unsubscribe)
	})

	return st, nil
}

// StreamDocument implements repository.DocumentStore.
func (s *Store) StreamDocument(_ context.Context, path string) (*stream.Stream[*repository.Document], error) {
	if s.isOffline() {
		return nil, errors.WithStack(repository.ErrStoreUnavailable)
	}

	var st *stream.Stream[*repository.Document]
	s.subscribe(func() { st.Emit(s.lookup(path)) }, func(unsubscribe func()) {
		st = stream.New[*repository.Document](unsubscribe)
	})

	return st, nil
}

// subscribe registers notify, lets build create the stream with the matching
// unsubscribe func, and emits the current state.
func (s *Store) subscribe(notify func(), build func(unsubscribe func())) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextSub
	s.nextSub++
	build(func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()

		delete(s.subs, id)
	})
	s.subs[id] = &subscriber{notify: notify}
	notify()
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store) SubscriberCount() int {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	return len(s.subs)
}

func (s *Store) broadcast() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	for _, sub := range s.subs {
		sub.notify()
	}
}

func (s *Store) isOffline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.offline
}

func (s *Store) lookup(path string) *repository.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return nil
	}

	return &repository.Document{ID: lastSegment(path), Path: path, Fields: cloneFields(doc)}
}

func (s *Store) runQuery(q repository.Query) []repository.Document {
	s.mu.RLock()
	out := make([]repository.Document, 0)
	for path, doc := range s.docs {
		if parentPath(path) != q.Collection || !matches(doc, q.Where) {
			continue
		}
		// Like the remote store, ordering by a field excludes documents lacking it.
		if q.OrderBy != "" {
			if _, ok := doc[q.OrderBy]; !ok {
				continue
			}
		}
		out = append(out, repository.Document{ID: lastSegment(path), Path: path, Fields: cloneFields(doc)})
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if q.OrderBy == "" {
			return out[i].Path < out[j].Path
		}
		c := compareValues(out[i].Fields[q.OrderBy], out[j].Fields[q.OrderBy])
		if c == 0 {
			return out[i].Path < out[j].Path
		}
		if q.Descending {
			return c > 0
		}

		return c < 0
	})

	return out
}

func matches(doc map[string]any, filters []repository.Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(doc[f.Field], normalize(f.Value)) {
			return false
		}
	}

	return true
}

func applyUpdate(doc map[string]any, u repository.FieldUpdate) {
	switch u.Op {
	case repository.OpSet:
		doc[u.Field] = normalize(u.Value)
	case repository.OpDelete:
		delete(doc, u.Field)
	case repository.OpArrayUnion:
		current, _ := doc[u.Field].([]any)
		for _, v := range u.Values {
			if !containsValue(current, v) {
				current = append(current, v)
			}
		}
		doc[u.Field] = current
	case repository.OpArrayRemove:
		current, _ := doc[u.Field].([]any)
		kept := make([]any, 0, len(current))
		for _, v := range current {
			if !containsValue(u.Values, v) {
				kept = append(kept, v)
			}
		}
		doc[u.Field] = kept
	}
}

func containsValue(list []any, v any) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, v) {
			return true
		}
	}

	return false
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		bv, _ := b.(time.Time)

		return av.Compare(bv)
	case string:
		bv, _ := b.(string)

		return strings.Compare(av, bv)
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	case int64:
		bv, _ := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}

	return 0
}

// normalize converts typed slices to []any, the shape the remote store returns.
func normalize(v any) any {
	switch tv := v.(type) {
	case []string:
		out := make([]any, len(tv))
		for i, s := range tv {
			out[i] = s
		}

		return out
	case []any:
		return append([]any(nil), tv...)
	case int:
		return int64(tv)
	}

	return v
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = normalize(v)
	}

	return out
}

func joinPath(collection, id string) string {
	return collection + "/" + id
}

func parentPath(path string) string {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}

	return path[:i]
}

func lastSegment(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
