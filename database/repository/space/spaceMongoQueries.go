package spaceRepo

import (
	"errors"
	"fmt"
	"time"

	"venuehive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a space by its id.
func (r *MongoSpaceRepo) GetByID(id string) (*models.Space, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var space models.Space
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&space)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch space %s: %w", id, err)
	}
	return &space, nil
}

// ListByHost returns all spaces owned by a host.
func (r *MongoSpaceRepo) ListByHost(hostID string) ([]models.Space, error) {
	return r.findMany(bson.M{"host_id": hostID})
}

// List returns spaces matching the browse filter, newest first.
func (r *MongoSpaceRepo) List(filter SpaceFilter) ([]models.Space, error) {
	query := bson.M{}
	if filter.MinCapacity > 0 {
		query["capacity"] = bson.M{"$gte": filter.MinCapacity}
	}
	if filter.PricingMode != "" {
		// A space priced "both" satisfies either mode.
		query["pricing_mode"] = bson.M{"$in": bson.A{filter.PricingMode, models.PricingBoth}}
	}
	if filter.Amenity != "" {
		query["amenities"] = filter.Amenity
	}
	if filter.City != "" {
		query["location.city"] = filter.City
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(query, opts)
}

func (r *MongoSpaceRepo) findMany(filter bson.M, opts ...*options.FindOptions) ([]models.Space, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query spaces: %w", err)
	}
	defer cursor.Close(ctx)

	var spaces []models.Space
	if err := cursor.All(ctx, &spaces); err != nil {
		return nil, fmt.Errorf("failed to decode spaces: %w", err)
	}
	return spaces, nil
}
