// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"vendora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no booking matches the given ID.
var ErrNotFound = fmt.Errorf("booking not found")

func (repo *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.Status = models.NormalizeStatus(string(booking.Status))
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (repo *mongoBookingRepo) GetByVendorAndDate(ctx context.Context, vendorID, date string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"vendorId": vendorID, "eventDate": date})
}

// GetByVendorAndMonth fetches all bookings whose event date starts with the
// given "YYYY-MM" prefix.
func (repo *mongoBookingRepo) GetByVendorAndMonth(ctx context.Context, vendorID, monthPrefix string) ([]models.Booking, error) {
	filter := bson.M{
		"vendorId":  vendorID,
		"eventDate": bson.M{"$regex": "^" + monthPrefix},
	}
	return repo.find(ctx, filter)
}

func (repo *mongoBookingRepo) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.NormalizeStatus(string(status))}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
