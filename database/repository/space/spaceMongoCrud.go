package spaceRepo

import (
	"fmt"
	"time"

	"venuehive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new space document.
func (r *MongoSpaceRepo) Create(space *models.Space) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	space.CreatedAt = now
	space.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, space)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing space document.
func (r *MongoSpaceRepo) Update(space *models.Space) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	space.UpdatedAt = time.Now()
	filter := bson.M{"id": space.ID}
	update := bson.M{"$set": space}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update space %s: %w", space.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteForHost removes a space document owned by the given host.
func (r *MongoSpaceRepo) DeleteForHost(id, hostID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "host_id": hostID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete space %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
