package mongo

import (
	"context"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PracticeRepository persists practices in MongoDB.
type PracticeRepository struct {
	collection *mongo.Collection
}

// NewPracticeRepository binds the repository to its collection.
func NewPracticeRepository(db *mongo.Database, collection string) *PracticeRepository {
	return &PracticeRepository{collection: db.Collection(collection)}
}

// FindAll returns every practice in store iteration order.
func (r *PracticeRepository) FindAll(ctx context.Context) ([]domain.Practice, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	practices := make([]domain.Practice, 0)
	for cursor.Next(ctx) {
		var doc PracticeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		practices = append(practices, mapPractice(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return practices, nil
}

// FindByID returns a single practice or ErrNotFound.
func (r *PracticeRepository) FindByID(ctx context.Context, id string) (*domain.Practice, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc PracticeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, wrapReadErr(err)
	}
	practice := mapPractice(doc)
	return &practice, nil
}

// Create inserts the practice and writes the assigned id back.
func (r *PracticeRepository) Create(ctx context.Context, practice *domain.Practice) error {
	now := time.Now().UTC()
	if practice.CreatedAt.IsZero() {
		practice.CreatedAt = now
	}
	practice.UpdatedAt = now

	doc, err := newPracticeDocument(*practice)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	practice.ID = doc.ID.Hex()
	return nil
}

// Update replaces the editable fields of an existing practice.
func (r *PracticeRepository) Update(ctx context.Context, practice domain.Practice) error {
	objectID, err := parseID(practice.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"title":            practice.Title,
		"description":      practice.Description,
		"image_url":        practice.ImageURL,
		"long_description": practice.LongDescription,
		"updated_at":       time.Now().UTC(),
	}}
	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return wrapWriteErr(err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a practice by id.
func (r *PracticeRepository) Delete(ctx context.Context, id string) error {
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
