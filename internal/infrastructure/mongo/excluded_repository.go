package mongo

import (
	"context"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExcludedPracticeRepository persists the hard-limit list in MongoDB.
type ExcludedPracticeRepository struct {
	collection *mongo.Collection
}

// NewExcludedPracticeRepository binds the repository to its collection.
func NewExcludedPracticeRepository(db *mongo.Database, collection string) *ExcludedPracticeRepository {
	return &ExcludedPracticeRepository{collection: db.Collection(collection)}
}

// FindAll returns every excluded practice.
func (r *ExcludedPracticeRepository) FindAll(ctx context.Context) ([]domain.ExcludedPractice, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	practices := make([]domain.ExcludedPractice, 0)
	for cursor.Next(ctx) {
		var doc ExcludedPracticeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		practices = append(practices, mapExcludedPractice(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return practices, nil
}

// Create inserts the excluded practice and writes the assigned id back.
// Case-insensitive uniqueness is enforced by the caller before any write
// reaches the gateway.
func (r *ExcludedPracticeRepository) Create(ctx context.Context, practice *domain.ExcludedPractice) error {
	doc, err := newExcludedPracticeDocument(*practice)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	practice.ID = doc.ID.Hex()
	return nil
}

// Delete removes an excluded practice by id.
func (r *ExcludedPracticeRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return wrapWriteErr(err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
