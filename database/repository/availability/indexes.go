// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the speaker_availability collection.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on slot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for speaker_id and date (primary query pattern)
		{
			Keys:    bson.D{{Key: "speaker_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("speaker_date_idx"),
		},
		// Covers the overlap check and ordered listings
		{
			Keys:    bson.D{{Key: "speaker_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("speaker_date_start_idx"),
		},
		// Status lookups for the booking compare-and-swap
		{
			Keys:    bson.D{{Key: "id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("id_status_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
