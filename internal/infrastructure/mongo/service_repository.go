package mongo

import (
	"context"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceRepository persists pricing entries in MongoDB.
type ServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository binds the repository to its collection.
func NewServiceRepository(db *mongo.Database, collection string) *ServiceRepository {
	return &ServiceRepository{collection: db.Collection(collection)}
}

// FindAll returns pricing entries sorted by position ascending.
func (r *ServiceRepository) FindAll(ctx context.Context) ([]domain.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	services := make([]domain.Service, 0)
	for cursor.Next(ctx) {
		var doc ServiceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		services = append(services, mapService(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return services, nil
}

// Count returns the number of pricing entries. New entries default their
// position to this value (append-to-end).
func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, wrapReadErr(err)
	}
	return int(count), nil
}

// Create inserts the pricing entry and writes the assigned id back.
func (r *ServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now().UTC()
	}
	doc, err := newServiceDocument(*service)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	service.ID = doc.ID.Hex()
	return nil
}

// Update replaces the editable fields of an existing pricing entry.
func (r *ServiceRepository) Update(ctx context.Context, service domain.Service) error {
	objectID, err := parseID(service.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"name":        service.Name,
		"price":       service.Price,
		"description": service.Description,
		"position":    service.Position,
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

// UpdatePositions rewrites the position of each listed entry.
func (r *ServiceRepository) UpdatePositions(ctx context.Context, positions map[string]int) error {
	for id, position := range positions {
		objectID, err := parseID(id)
		if err != nil {
			return err
		}
		result, err := r.collection.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{"position": position}})
		if err != nil {
			return wrapWriteErr(err)
		}
		if result.MatchedCount == 0 {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Delete removes a pricing entry by id.
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
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
