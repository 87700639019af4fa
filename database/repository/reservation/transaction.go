package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospitality/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxTxnAttempts = 3

// CreateReservation inserts the reservation and claims the room inside one
// Mongo transaction. The room update is guarded: its filter only matches when
// no embedded active stay overlaps the requested half-open range, so two
// concurrent bookings for the same room serialize on the room document and
// exactly one of an overlapping pair wins. Dates are YYYY-MM-DD strings and
// compare correctly with $lt/$gt.
func (repo *MongoReservationRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	stay := models.StayRef{
		ReservationID: res.ID,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
	}

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id": res.RoomID,
			"active_stays": bson.M{
				"$not": bson.M{
					"$elemMatch": bson.M{
						"check_in":  bson.M{"$lt": res.CheckOut},
						"check_out": bson.M{"$gt": res.CheckIn},
					},
				},
			},
		}
		update := bson.M{
			"$push": bson.M{"active_stays": stay},
			"$set":  bson.M{"updated_at": time.Now()},
		}

		result, err := repo.roomColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to claim room for stay: %w", err)
		}
		if result.MatchedCount == 0 {
			return models.ErrRoomUnavailable
		}

		if _, err := repo.resColl.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	return repo.runInTransaction(ctx, txnFn)
}

// UpdateStatus performs a guarded lifecycle transition. With releaseStay set
// the embedded stay reference is pulled from the room in the same
// transaction, so cancelled and checked-out stays stop blocking the dates the
// instant the status flips.
func (repo *MongoReservationRepo) UpdateStatus(
	ctx context.Context,
	id string,
	allowedFrom []models.ReservationStatus,
	to models.ReservationStatus,
	releaseStay bool,
) (*models.Reservation, error) {
	var updated models.Reservation

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": id, "status": bson.M{"$in": allowedFrom}}
		update := bson.M{"$set": bson.M{"status": to}}

		result, err := repo.resColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to update reservation %s: %w", id, err)
		}
		if result.MatchedCount == 0 {
			// Distinguish a missing record from an illegal transition.
			n, err := repo.resColl.CountDocuments(sc, bson.M{"id": id})
			if err != nil {
				return fmt.Errorf("failed to look up reservation %s: %w", id, err)
			}
			if n == 0 {
				return models.ErrReservationNotFound
			}
			return models.ErrInvalidTransition
		}

		if err := repo.resColl.FindOne(sc, bson.M{"id": id}).Decode(&updated); err != nil {
			return fmt.Errorf("failed to reload reservation %s: %w", id, err)
		}

		if releaseStay {
			pull := bson.M{
				"$pull": bson.M{"active_stays": bson.M{"reservation_id": id}},
				"$set":  bson.M{"updated_at": time.Now()},
			}
			if _, err := repo.roomColl.UpdateOne(sc, bson.M{"id": updated.RoomID}, pull); err != nil {
				return fmt.Errorf("failed to release stay for reservation %s: %w", id, err)
			}
		}
		return nil
	}

	if err := repo.runInTransaction(ctx, txnFn); err != nil {
		return nil, err
	}
	return &updated, nil
}

// runInTransaction executes fn inside a session transaction, retrying a few
// times when the server reports a transient conflict between overlapping
// transactions on the same room document.
func (repo *MongoReservationRepo) runInTransaction(ctx context.Context, txnFn func(mongo.SessionContext) error) error {
	client := repo.resColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var lastErr error
	for attempt := 0; attempt < maxTxnAttempts; attempt++ {
		lastErr = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
			if err := sc.StartTransaction(); err != nil {
				return err
			}
			if err := txnFn(sc); err != nil {
				_ = sc.AbortTransaction(sc)
				return err
			}
			return sc.CommitTransaction(sc)
		})

		if isTransientTxnError(lastErr) {
			continue
		}
		break
	}

	if lastErr != nil {
		// Domain outcomes pass through unchanged; everything else is a store
		// failure the caller must not confuse with a booking conflict.
		if errors.Is(lastErr, models.ErrRoomUnavailable) ||
			errors.Is(lastErr, models.ErrReservationNotFound) ||
			errors.Is(lastErr, models.ErrInvalidTransition) {
			return lastErr
		}
		return fmt.Errorf("reservation transaction failed: %w", lastErr)
	}
	return nil
}

func isTransientTxnError(err error) bool {
	if err == nil {
		return false
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}
