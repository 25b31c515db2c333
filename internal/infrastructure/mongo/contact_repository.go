package mongo

import (
	"context"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactFormRepository persists contact-form submissions in MongoDB.
// Submissions are immutable: there is deliberately no Update.
type ContactFormRepository struct {
	collection *mongo.Collection
}

// NewContactFormRepository binds the repository to its collection.
func NewContactFormRepository(db *mongo.Database, collection string) *ContactFormRepository {
	return &ContactFormRepository{collection: db.Collection(collection)}
}

// FindAll returns submissions newest-first.
func (r *ContactFormRepository) FindAll(ctx context.Context) ([]domain.ContactForm, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	forms := make([]domain.ContactForm, 0)
	for cursor.Next(ctx) {
		var doc ContactFormDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		forms = append(forms, mapContactForm(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return forms, nil
}

// FindByID returns a single submission or ErrNotFound.
func (r *ContactFormRepository) FindByID(ctx context.Context, id string) (*domain.ContactForm, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc ContactFormDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, wrapReadErr(err)
	}
	form := mapContactForm(doc)
	return &form, nil
}

// Create inserts the submission with a server-assigned creation timestamp.
func (r *ContactFormRepository) Create(ctx context.Context, form *domain.ContactForm) error {
	form.CreatedAt = time.Now().UTC()
	doc, err := newContactFormDocument(*form)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	form.ID = doc.ID.Hex()
	return nil
}

// Delete removes a submission by id.
func (r *ContactFormRepository) Delete(ctx context.Context, id string) error {
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
