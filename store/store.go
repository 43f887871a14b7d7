// Package store provides a generic document store instantiated once per
// entity collection. The production backend is MongoDB; an in-memory backend
// with the same semantics exists for isolated tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound covers a missing document, a malformed id, and an update
	// that modified nothing. Callers map it to a 404; they never see the
	// underlying driver error.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID marks an externally supplied id that is not a valid
	// ObjectID hex string.
	ErrInvalidID = errors.New("invalid document id")
)

// Query selects documents by a single equality match on a field, optionally
// sorted ascending by another field. The zero Query matches the whole
// collection in insertion order.
type Query struct {
	Field  string
	Value  string
	SortBy string
}

// Store is the per-collection contract shared by the mongo and memory
// backends.
type Store[T any] interface {
	// Insert persists a new document and returns its assigned id. The
	// caller stamps timestamps and defaults before calling.
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)

	// GetByID fetches by external id. A malformed id behaves exactly like
	// a missing document.
	GetByID(ctx context.Context, id string) (*T, error)

	// List returns all documents matching the query, never nil.
	List(ctx context.Context, q Query) ([]T, error)

	// UpdateByID applies a $set of exactly the supplied keys and returns
	// the updated document. ErrNotFound is returned when the id does not
	// resolve or when the update modified nothing; the two cases are not
	// distinguished.
	UpdateByID(ctx context.Context, id string, set bson.M) (*T, error)

	// DeleteByID reports whether a delete was issued without error.
	// Deleting a well-formed id that matches nothing still reports true;
	// a malformed id reports false.
	DeleteByID(ctx context.Context, id string) bool

	// DeleteMany removes every document whose field equals value.
	DeleteMany(ctx context.Context, field, value string) error
}

// ParseID converts an external string id to its internal ObjectID form.
// The mapping is reversible via ObjectID.Hex.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
