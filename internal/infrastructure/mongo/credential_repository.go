package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CredentialRepository stores the single admin credential document.
type CredentialRepository struct {
	collection *mongo.Collection
}

// NewCredentialRepository binds the repository to its collection.
func NewCredentialRepository(db *mongo.Database, collection string) *CredentialRepository {
	return &CredentialRepository{collection: db.Collection(collection)}
}

// Get returns the stored credential hash, or ErrNotFound when none has ever
// been set.
func (r *CredentialRepository) Get(ctx context.Context) (string, error) {
	var doc CredentialDocument
	if err := r.collection.FindOne(ctx, bson.D{}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrNotFound
		}
		return "", wrapReadErr(err)
	}
	return doc.PasswordHash, nil
}

// Set stores the credential hash, creating the document on first use.
func (r *CredentialRepository) Set(ctx context.Context, hash string) error {
	update := bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.D{}, update, opts); err != nil {
		return wrapWriteErr(err)
	}
	return nil
}
