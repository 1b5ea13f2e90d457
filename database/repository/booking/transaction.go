// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"podium/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a mongo session transaction.
// Session.WithTransaction replays fn on transient aborts, so when two
// transactions race on the same slot document the loser's write conflict
// is retried until its status filter misses and fn returns the sentinel.
// Sentinel errors carry no transient label and propagate unchanged so the
// service layer can translate them.
func (r *mongoBookingRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// BookSlot flips the slot from "available" to slotStatus and inserts the
// booking as one atomic unit. The status value in the update filter is the
// compare-and-swap: of N concurrent attempts on the same slot exactly one
// update matches, every other attempt aborts with ErrSlotUnavailable.
func (r *mongoBookingRepo) BookSlot(ctx context.Context, slotID, slotStatus string, booking *models.Booking) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		now := time.Now()

		filter := bson.M{"id": slotID, "status": models.SlotAvailable}
		update := bson.M{"$set": bson.M{"status": slotStatus, "updated_at": now}}

		res, err := r.slotColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("slot status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// Cancel sets the booking to "cancelled" and releases the slot back to
// "available" in the same commit. The status filter rejects bookings that
// are not pending or confirmed.
func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID, slotID string) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		now := time.Now()

		filter := bson.M{
			"id":     bookingID,
			"status": bson.M{"$in": []string{models.BookingPending, models.BookingConfirmed}},
		}
		update := bson.M{"$set": bson.M{"status": models.BookingCancelled, "updated_at": now}}

		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("booking status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrStateMismatch
		}

		slotUpdate := bson.M{"$set": bson.M{"status": models.SlotAvailable, "updated_at": now}}
		if _, err := r.slotColl.UpdateOne(sc, bson.M{"id": slotID}, slotUpdate); err != nil {
			return fmt.Errorf("slot release failed: %w", err)
		}
		return nil
	})
}

// Confirm advances a pending booking to "confirmed" and the slot from
// "pending" to "booked" atomically.
func (r *mongoBookingRepo) Confirm(ctx context.Context, bookingID, slotID string) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		now := time.Now()

		filter := bson.M{"id": bookingID, "status": models.BookingPending}
		update := bson.M{"$set": bson.M{"status": models.BookingConfirmed, "updated_at": now}}

		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("booking status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrStateMismatch
		}

		slotFilter := bson.M{"id": slotID, "status": models.SlotPending}
		slotUpdate := bson.M{"$set": bson.M{"status": models.SlotBooked, "updated_at": now}}
		sres, err := r.slotColl.UpdateOne(sc, slotFilter, slotUpdate)
		if err != nil {
			return fmt.Errorf("slot status update failed: %w", err)
		}
		if sres.MatchedCount == 0 {
			return ErrStateMismatch
		}
		return nil
	})
}
