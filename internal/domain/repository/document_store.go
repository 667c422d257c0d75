// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"petcare/internal/errors"
	"petcare/internal/stream"
)

// Fields every stored document carries.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Domain-specific errors for document persistence.
var (
	// ErrDocumentNotFound is returned when an update targets a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrStoreUnavailable is returned when the remote store cannot be reached.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// Document is a stored document as seen by the adapter.
type Document struct {
	ID     string
	Path   string
	Fields map[string]any
}

// FieldOp is the kind of change a FieldUpdate applies.
type FieldOp int

const (
	// OpSet overwrites the field.
	OpSet FieldOp = iota
	// OpDelete removes the field from the document entirely.
	OpDelete
	// OpArrayUnion adds the values not already present in the array field.
	OpArrayUnion
	// OpArrayRemove removes every occurrence of the values from the array field.
	OpArrayRemove
)

// FieldUpdate is one field change applied server-side.
type FieldUpdate struct {
	Field  string
	Op     FieldOp
	Value  any
	Values []any
}

// Set overwrites field with value.
func Set(field string, value any) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpSet, Value: value}
}

// DeleteField removes field from the document.
func DeleteField(field string) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpDelete}
}

// ArrayUnion adds values to the array field, skipping those already present.
func ArrayUnion(field string, values ...any) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpArrayUnion, Values: values}
}

// ArrayRemove removes values from the array field.
func ArrayRemove(field string, values ...any) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpArrayRemove, Values: values}
}

// Filter is an equality condition on a field.
type Filter struct {
	Field string
	Value any
}

// Query selects and orders the documents of one collection.
type Query struct {
	Collection string
	Where      []Filter
	OrderBy    string
	Descending bool
}

// DocumentStore is the generic record store adapter every entity goes through.
type DocumentStore interface {
	// CreateDocument writes fields under collection and returns the document ID.
	// When id is empty a fresh ID is allocated; otherwise the document at that ID
	// is created or replaced. The ID is echoed into the document and the creation
	// time is stamped by the server.
	CreateDocument(ctx context.Context, collection string, fields map[string]any, id string) (string, error)

	// UpdateDocument applies updates to the document at path and stamps the
	// update time. Returns ErrDocumentNotFound when the document does not exist.
	UpdateDocument(ctx context.Context, path string, updates ...FieldUpdate) error

	// DeleteDocument removes the document at path. Callers treat deleting a
	// missing document as non-fatal.
	DeleteDocument(ctx context.Context, path string) error

	// StreamCollection emits the query result now and after every change.
	StreamCollection(ctx context.Context, query Query) (*stream.Stream[[]Document], error)

	// StreamDocument emits the document now and after every change; nil when the
	// document does not exist or was deleted.
	StreamDocument(ctx context.Context, path string) (*stream.Stream[*Document], error)
}
