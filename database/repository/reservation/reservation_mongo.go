package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"hospitality/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB. It
// holds both collections because the booking transaction spans the
// reservation record and the stay reference embedded on the room.
type MongoReservationRepo struct {
	resColl  *mongo.Collection
	roomColl *mongo.Collection
}

// NewMongoReservationRepo creates a ReservationRepository over the given
// database handle.
func NewMongoReservationRepo(db *mongo.Database) *MongoReservationRepo {
	repo := &MongoReservationRepo{
		resColl:  db.Collection("reservations"),
		roomColl: db.Collection("rooms"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reservation indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (repo *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "check_out", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "guest_id", Value: 1}}},
	}

	_, err := repo.resColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its unique ID.
func (repo *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.Reservation
	if err := repo.resColl.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	return &res, nil
}

// GetAll retrieves all reservations. Ordering is left to the caller.
func (repo *MongoReservationRepo) GetAll() ([]models.Reservation, error) {
	return repo.find(bson.M{})
}

// GetActiveByRoomID retrieves the active reservations for a room.
func (repo *MongoReservationRepo) GetActiveByRoomID(roomID string) ([]models.Reservation, error) {
	filter := bson.M{
		"room_id": roomID,
		"status":  bson.M{"$in": []models.ReservationStatus{models.ReservationConfirmed, models.ReservationCheckedIn}},
	}
	return repo.find(filter)
}

// GetCheckouts retrieves Checked In reservations departing on the given day.
// A reservation that never checked in is not a departing guest.
func (repo *MongoReservationRepo) GetCheckouts(day string) ([]models.Reservation, error) {
	filter := bson.M{
		"check_out": day,
		"status":    models.ReservationCheckedIn,
	}
	return repo.find(filter)
}

func (repo *MongoReservationRepo) find(filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := repo.resColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}
