package repository

import (
	"context"
	"errors"

	"wedding-api/core/constants"
	"wedding-api/core/database"
	"wedding-api/modules/rsvp/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RSVPRepositoryInterface defines the document-store operations for RSVP
// records.
type RSVPRepositoryInterface interface {
	GetByFamilyName(ctx context.Context, familyName string) (*entity.RSVPRecord, error)
	Upsert(ctx context.Context, record *entity.RSVPRecord) error
	Exists(ctx context.Context, familyName string) (bool, error)
}

type RSVPRepository struct {
	collection *mongo.Collection
}

func NewRSVPRepository(db *database.Database) *RSVPRepository {
	return &RSVPRepository{
		collection: db.Collection(constants.RSVPCollection),
	}
}

// GetByFamilyName returns nil (not an error) when no record exists yet.
func (r *RSVPRepository) GetByFamilyName(ctx context.Context, familyName string) (*entity.RSVPRecord, error) {
	var record entity.RSVPRecord
	err := r.collection.FindOne(ctx, bson.M{"familyName": familyName}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert fully replaces the record, creating it when absent. Keying the
// replace on familyName keeps the one-record-per-family invariant.
func (r *RSVPRepository) Upsert(ctx context.Context, record *entity.RSVPRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"familyName": record.FamilyName}, record, opts)
	return err
}

func (r *RSVPRepository) Exists(ctx context.Context, familyName string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"familyName": familyName},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
