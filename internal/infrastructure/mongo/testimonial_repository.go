package mongo

import (
	"context"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestimonialRepository persists testimonials in MongoDB.
type TestimonialRepository struct {
	collection *mongo.Collection
}

// NewTestimonialRepository binds the repository to its collection.
func NewTestimonialRepository(db *mongo.Database, collection string) *TestimonialRepository {
	return &TestimonialRepository{collection: db.Collection(collection)}
}

// FindAll returns testimonials newest-first by display date.
func (r *TestimonialRepository) FindAll(ctx context.Context) ([]domain.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	testimonials := make([]domain.Testimonial, 0)
	for cursor.Next(ctx) {
		var doc TestimonialDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		testimonials = append(testimonials, mapTestimonial(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return testimonials, nil
}

// Create inserts the testimonial and writes the assigned id back.
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now().UTC()
	}
	doc, err := newTestimonialDocument(*testimonial)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	testimonial.ID = doc.ID.Hex()
	return nil
}

// UpdateResponse attaches the owner's response to a testimonial.
func (r *TestimonialRepository) UpdateResponse(ctx context.Context, id, response string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{"response": response}})
	if err != nil {
		return wrapWriteErr(err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a testimonial by id.
func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
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
