package events

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is where MongoPublisher writes
const CollectionName = "activity_events"

// MongoPublisher implements Publisher for MongoDB
type MongoPublisher struct {
	collection *mongo.Collection
}

// NewMongoPublisher creates a new MongoPublisher
func NewMongoPublisher(db *mongo.Database) *MongoPublisher {
	return &MongoPublisher{collection: db.Collection(CollectionName)}
}

// Publish inserts the event as one document
func (p *MongoPublisher) Publish(ctx context.Context, event Event) error {
	if _, err := p.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert activity event %s: %w", event.ID, err)
	}
	return nil
}
