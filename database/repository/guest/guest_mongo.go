package guestRepo

import (
	"context"
	"fmt"
	"time"

	"hospitality/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GuestRepository defines methods for guest profile data access.
type GuestRepository interface {
	// Create inserts a new guest profile.
	Create(guest *models.Guest) error
	// GetByID retrieves a guest by its unique ID.
	GetByID(id string) (*models.Guest, error)
	// GetByName retrieves a guest by display name. Returns nil when absent.
	GetByName(name string) (*models.Guest, error)
	// GetByUserID retrieves the guest linked to a platform user account.
	// Returns nil when no guest is linked.
	GetByUserID(userID string) (*models.Guest, error)
	// GetAll retrieves all guest profiles.
	GetAll() ([]models.Guest, error)
}

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo creates a GuestRepository over the given database handle.
func NewMongoGuestRepo(db *mongo.Database) *MongoGuestRepo {
	repo := &MongoGuestRepo{coll: db.Collection("guests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create guest indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGuestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new guest profile.
func (r *MongoGuestRepo) Create(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	guest.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, guest); err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// GetByID retrieves a guest by its unique ID.
func (r *MongoGuestRepo) GetByID(id string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to fetch guest with id %s: %w", id, err)
	}
	return &guest, nil
}

// GetByName retrieves a guest by display name.
func (r *MongoGuestRepo) GetByName(name string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&guest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch guest %q: %w", name, err)
	}
	return &guest, nil
}

// GetByUserID retrieves the guest linked to a platform user account.
func (r *MongoGuestRepo) GetByUserID(userID string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&guest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch guest for user %s: %w", userID, err)
	}
	return &guest, nil
}

// GetAll retrieves all guest profiles.
func (r *MongoGuestRepo) GetAll() ([]models.Guest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	defer cursor.Close(ctx)

	var guests []models.Guest
	for cursor.Next(ctx) {
		var g models.Guest
		if err := cursor.Decode(&g); err != nil {
			return nil, fmt.Errorf("failed to decode guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, nil
}
