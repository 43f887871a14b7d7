package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used for isolated testing. Documents pass
// through the bson codec on the way in and out so that field names, zero
// values and modified-detection match the mongo backend.
type Memory[T any] struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]bson.M
	order []primitive.ObjectID
}

var _ Store[struct{}] = (*Memory[struct{}])(nil)

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{docs: make(map[primitive.ObjectID]bson.M)}
}

func (s *Memory[T]) Insert(_ context.Context, doc *T) (primitive.ObjectID, error) {
	m, err := toDoc(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	m["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = m
	s.order = append(s.order, id)
	return id, nil
}

func (s *Memory[T]) GetByID(_ context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	m, ok := s.docs[oid]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	m = copyDoc(m)
	s.mu.Unlock()
	return fromDoc[T](m)
}

func (s *Memory[T]) List(_ context.Context, q Query) ([]T, error) {
	s.mu.Lock()
	matched := make([]bson.M, 0, len(s.order))
	for _, id := range s.order {
		m := s.docs[id]
		if q.Field != "" && !valuesEqual(m[q.Field], q.Value) {
			continue
		}
		matched = append(matched, copyDoc(m))
	}
	s.mu.Unlock()

	if q.SortBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return numField(matched[i], q.SortBy) < numField(matched[j], q.SortBy)
		})
	}

	docs := make([]T, 0, len(matched))
	for _, m := range matched {
		doc, err := fromDoc[T](m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (s *Memory[T]) UpdateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	// Run the set document through the codec so that value types compare
	// the same way they would after a mongo round-trip.
	normalized, err := normalize(set)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	m, ok := s.docs[oid]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	modified := false
	for k, v := range normalized {
		if !reflect.DeepEqual(m[k], v) {
			m[k] = v
			modified = true
		}
	}
	s.mu.Unlock()

	if !modified {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Memory[T]) DeleteByID(_ context.Context, id string) bool {
	oid, err := ParseID(id)
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[oid]; ok {
		delete(s.docs, oid)
		s.removeFromOrder(oid)
	}
	return true
}

func (s *Memory[T]) DeleteMany(_ context.Context, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, m := range s.docs {
		if valuesEqual(m[field], value) {
			delete(s.docs, id)
			s.removeFromOrder(id)
		}
	}
	return nil
}

func (s *Memory[T]) removeFromOrder(id primitive.ObjectID) {
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// copyDoc shallow-copies a stored document so reads can marshal it outside
// the lock without racing a concurrent update.
func copyDoc(m bson.M) bson.M {
	out := make(bson.M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func toDoc[T any](v *T) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return m, nil
}

func fromDoc[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func normalize(m bson.M) (bson.M, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode set document: %w", err)
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode set document: %w", err)
	}
	return out, nil
}

func valuesEqual(v interface{}, want string) bool {
	s, ok := v.(string)
	return ok && s == want
}

func numField(m bson.M, key string) float64 {
	switch v := m[key].(type) {
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
