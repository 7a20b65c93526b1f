package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/stemsi/school-api/internal/model"
)

// Filter narrows a Find. Keys are field names, values are either the
// expected value or an operator document such as bson.M{"$gte": t}.
// A nil or empty filter matches every document.
type Filter = bson.M

// DocumentRepository is the only path to the document store.
//
// Find returns documents exactly as stored. They are not re-validated
// against the write schema, so older records keep whatever shape they were
// written with.
type DocumentRepository interface {
	Create(ctx context.Context, kind model.Kind, record interface{}) (string, error)
	Find(ctx context.Context, kind model.Kind, filter Filter, limit int64) ([]bson.M, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Available() bool
}

type documentRepository struct {
	db *mongo.Database
}

// NewDocumentRepository wraps db. A nil db puts the repository in degraded
// mode: every data operation fails with ErrStorageUnavailable.
func NewDocumentRepository(db *mongo.Database) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Available() bool {
	return r.db != nil
}

func (r *documentRepository) Create(ctx context.Context, kind model.Kind, record interface{}) (string, error) {
	coll := kind.Collection()
	if r.db == nil {
		return "", &StorageError{Op: "insert", Kind: kind, Err: ErrStorageUnavailable}
	}

	doc, err := toDocument(record)
	if err != nil {
		return "", &StorageError{Op: "insert", Kind: kind, Err: err}
	}

	res, err := r.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", &StorageError{Op: "insert", Kind: kind, Err: err}
	}

	return idString(res.InsertedID), nil
}

func (r *documentRepository) Find(ctx context.Context, kind model.Kind, filter Filter, limit int64) ([]bson.M, error) {
	coll := kind.Collection()
	if r.db == nil {
		return nil, &StorageError{Op: "find", Kind: kind, Err: ErrStorageUnavailable}
	}

	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := r.db.Collection(coll).Find(ctx, filter, findOptions(limit))
	if err != nil {
		return nil, &StorageError{Op: "find", Kind: kind, Err: err}
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &StorageError{Op: "find", Kind: kind, Err: err}
	}
	return docs, nil
}

func (r *documentRepository) CollectionNames(ctx context.Context) ([]string, error) {
	if r.db == nil {
		return nil, &StorageError{Op: "list collections", Err: ErrStorageUnavailable}
	}

	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &StorageError{Op: "list collections", Err: err}
	}
	return names, nil
}

// Ping checks connectivity without touching any collection.
func (r *documentRepository) Ping(ctx context.Context) error {
	if r.db == nil {
		return &StorageError{Op: "ping", Err: ErrStorageUnavailable}
	}
	if err := r.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}

// findOptions applies limit when positive. Zero and negative mean no limit.
func findOptions(limit int64) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

// toDocument flattens a record into a plain field mapping.
func toDocument(record interface{}) (bson.M, error) {
	if record == nil {
		return nil, fmt.Errorf("nil record")
	}
	if doc, ok := record.(bson.M); ok {
		return doc, nil
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("flatten record: %w", err)
	}
	return doc, nil
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
