// File: database/repository/inquiry/interface.go
package inquiryRepo

import (
	"context"
	"errors"

	"podium/database"
	"podium/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no inquiry matches the given filter.
var ErrNotFound = errors.New("inquiry not found")

// InquiryRepository is an append-only log of contact requests. Inquiries
// are never deleted, only status-changed.
type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *models.Inquiry) error
	UpdateStatus(ctx context.Context, speakerID, inquiryID, status string) error
	ListBySpeaker(ctx context.Context, speakerID string) ([]models.Inquiry, error)
	EnsureIndexes() error
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo constructs a new MongoDB InquiryRepository.
func NewMongoInquiryRepo() InquiryRepository {
	return &mongoInquiryRepo{
		coll: database.DB().Collection("inquiries"),
	}
}
