// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"podium/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
// The partial unique index on availability_id is the durable backstop for
// slot exclusivity: at most one pending or confirmed booking may reference
// a slot, even if a code path ever bypasses the transaction.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "availability_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_availability").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{models.BookingPending, models.BookingConfirmed}},
				}),
		},
		{
			Keys:    bson.D{{Key: "speaker_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("speaker_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "organizer_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("organizer_created_idx"),
		},
	}

	_, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
