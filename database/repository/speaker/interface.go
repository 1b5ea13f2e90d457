// File: database/repository/speaker/interface.go
package speakerRepo

import (
	"context"

	"podium/database"
	"podium/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SpeakerPolicyRepository reads the booking policy flags off the speaker
// profile. Profile CRUD belongs to the profile collaborator; this repo
// never writes.
type SpeakerPolicyRepository interface {
	IsInstantBook(ctx context.Context, speakerID string) (bool, error)
}

type mongoSpeakerRepo struct {
	coll *mongo.Collection
}

// NewMongoSpeakerRepo constructs a read-only view over the speakers collection.
func NewMongoSpeakerRepo() SpeakerPolicyRepository {
	return &mongoSpeakerRepo{
		coll: database.DB().Collection("speakers"),
	}
}

// IsInstantBook reports whether bookings for this speaker confirm outright.
// A missing profile defaults to instant book, matching how the marketplace
// treats speakers created before the approval flow existed.
func (r *mongoSpeakerRepo) IsInstantBook(ctx context.Context, speakerID string) (bool, error) {
	var policy models.SpeakerPolicy
	err := r.coll.FindOne(ctx, bson.M{"id": speakerID}).Decode(&policy)
	if err == mongo.ErrNoDocuments {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return policy.IsInstantBook, nil
}
