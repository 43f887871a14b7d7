package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB-backed Store implementation.
type Mongo[T any] struct {
	coll *mongo.Collection
}

var _ Store[struct{}] = (*Mongo[struct{}])(nil)

// NewMongo binds a store to the named collection.
func NewMongo[T any](db *mongo.Database, collection string) *Mongo[T] {
	return &Mongo[T]{coll: db.Collection(collection)}
}

func (s *Mongo[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", s.coll.Name(), err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", s.coll.Name(), res.InsertedID)
	}
	return oid, nil
}

func (s *Mongo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc T
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.coll.Name(), err)
	}
	return &doc, nil
}

func (s *Mongo[T]) List(ctx context.Context, q Query) ([]T, error) {
	filter := bson.M{}
	if q.Field != "" {
		filter[q.Field] = q.Value
	}

	opts := options.Find()
	if q.SortBy != "" {
		opts.SetSort(bson.D{{Key: q.SortBy, Value: 1}})
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.coll.Name(), err)
	}

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.coll.Name(), err)
	}
	return docs, nil
}

func (s *Mongo[T]) UpdateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update in %s: %w", s.coll.Name(), err)
	}
	if res.ModifiedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Mongo[T]) DeleteByID(ctx context.Context, id string) bool {
	oid, err := ParseID(id)
	if err != nil {
		return false
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		log.Printf("Failed to delete from %s: %v", s.coll.Name(), err)
		return false
	}
	return true
}

func (s *Mongo[T]) DeleteMany(ctx context.Context, field, value string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{field: value}); err != nil {
		return fmt.Errorf("bulk delete from %s: %w", s.coll.Name(), err)
	}
	return nil
}
