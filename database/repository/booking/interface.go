// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"vendora/database"
	"vendora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists event bookings. Statuses are normalized to the
// closed enum on write so availability reads never see raw casing.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByVendorAndDate(ctx context.Context, vendorID, date string) ([]models.Booking, error)
	GetByVendorAndMonth(ctx context.Context, vendorID, monthPrefix string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed repository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("vendora")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
