package roomRepo

import (
	"context"
	"fmt"
	"time"

	"hospitality/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a RoomRepository over the given database handle.
func NewMongoRoomRepo(db *mongo.Database) *MongoRoomRepo {
	repo := &MongoRoomRepo{coll: db.Collection("rooms")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create room indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.ActiveStays == nil {
		room.ActiveStays = []models.StayRef{}
	}

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room %s: %w", room.Number, err)
	}
	return nil
}

// GetByID retrieves a room by its unique ID.
func (r *MongoRoomRepo) GetByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

// GetByNumber retrieves a room by its human-facing number.
func (r *MongoRoomRepo) GetByNumber(number string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"number": number}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", number, err)
	}
	return &room, nil
}

// GetAll retrieves the full inventory ordered by room number.
func (r *MongoRoomRepo) GetAll() ([]models.Room, error) {
	return r.find(bson.M{})
}

// GetByStatus retrieves rooms by housekeeping status and optional type.
func (r *MongoRoomRepo) GetByStatus(status models.RoomStatus, roomType models.RoomType) ([]models.Room, error) {
	filter := bson.M{"status": status}
	if roomType != "" {
		filter["type"] = roomType
	}
	return r.find(filter)
}

func (r *MongoRoomRepo) find(filter bson.M) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// Count returns the number of rooms in the inventory.
func (r *MongoRoomRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return n, nil
}

// CountByStatus returns the number of rooms with the given status flag.
func (r *MongoRoomRepo) CountByStatus(status models.RoomStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms with status %s: %w", status, err)
	}
	return n, nil
}

// UpdateStatus sets the housekeeping status flag on a room.
func (r *MongoRoomRepo) UpdateStatus(id string, status models.RoomStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for room %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrRoomNotFound
	}
	return nil
}
