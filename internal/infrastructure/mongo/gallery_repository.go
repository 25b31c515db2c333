package mongo

import (
	"context"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GalleryRepository persists gallery images in MongoDB.
type GalleryRepository struct {
	collection *mongo.Collection
}

// NewGalleryRepository binds the repository to its collection.
func NewGalleryRepository(db *mongo.Database, collection string) *GalleryRepository {
	return &GalleryRepository{collection: db.Collection(collection)}
}

// FindAll returns every gallery image.
func (r *GalleryRepository) FindAll(ctx context.Context) ([]domain.GalleryImage, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	images := make([]domain.GalleryImage, 0)
	for cursor.Next(ctx) {
		var doc GalleryImageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		images = append(images, mapGalleryImage(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return images, nil
}

// Create inserts the gallery image and writes the assigned id back.
func (r *GalleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}
	doc, err := newGalleryImageDocument(*image)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	image.ID = doc.ID.Hex()
	return nil
}

// Update replaces the editable fields of an existing gallery image.
func (r *GalleryRepository) Update(ctx context.Context, image domain.GalleryImage) error {
	objectID, err := parseID(image.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"url":   image.URL,
		"title": image.Title,
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

// Delete removes a gallery image by id.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
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

// CarouselRepository persists home-page carousel slides in MongoDB.
type CarouselRepository struct {
	collection *mongo.Collection
}

// NewCarouselRepository binds the repository to its collection.
func NewCarouselRepository(db *mongo.Database, collection string) *CarouselRepository {
	return &CarouselRepository{collection: db.Collection(collection)}
}

// FindAll returns carousel slides in storage order.
func (r *CarouselRepository) FindAll(ctx context.Context) ([]domain.CarouselImage, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapReadErr(err)
	}
	defer cursor.Close(ctx)

	images := make([]domain.CarouselImage, 0)
	for cursor.Next(ctx) {
		var doc CarouselImageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapReadErr(err)
		}
		images = append(images, mapCarouselImage(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapReadErr(err)
	}
	return images, nil
}

// Create inserts the carousel slide and writes the assigned id back.
func (r *CarouselRepository) Create(ctx context.Context, image *domain.CarouselImage) error {
	doc, err := newCarouselImageDocument(*image)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapWriteErr(err)
	}
	image.ID = doc.ID.Hex()
	return nil
}

// Update replaces the editable fields of an existing carousel slide.
func (r *CarouselRepository) Update(ctx context.Context, image domain.CarouselImage) error {
	objectID, err := parseID(image.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"src": image.Src,
		"alt": image.Alt,
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

// Delete removes a carousel slide by id.
func (r *CarouselRepository) Delete(ctx context.Context, id string) error {
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
