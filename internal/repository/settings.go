package repository

import (
	"context"
	"errors"
	"time"

	"workshop-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("company_settings"),
	}
}

func (r *SettingsRepository) FindByUserID(userID primitive.ObjectID) (*models.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var settings models.CompanySettings
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	return &settings, nil
}

func (r *SettingsRepository) Create(settings *models.CompanySettings) (*models.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, settings)
	if err != nil {
		return nil, err
	}

	settings.ID = result.InsertedID.(primitive.ObjectID)
	return settings, nil
}

// Upsert replaces the manager's settings document, creating it if absent.
func (r *SettingsRepository) Upsert(userID primitive.ObjectID, settings *models.CompanySettings) (*models.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	settings.UserID = userID
	settings.UpdatedAt = time.Now()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": settings},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var updated models.CompanySettings
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// ConsumeInvoiceNumber returns the manager's current invoice number and
// atomically advances the counter.
func (r *SettingsRepository) ConsumeInvoiceNumber(userID primitive.ObjectID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$inc": bson.M{"next_invoice_number": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	)

	var settings models.CompanySettings
	if err := result.Decode(&settings); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, ErrSettingsNotFound
		}
		return 0, err
	}

	return settings.NextInvoiceNumber, nil
}

// CreateIndexes creates necessary indexes for the company_settings collection
func (r *SettingsRepository) CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
