// internal/app/store/bookings/bookingstore.go
package bookingstore

import (
	"context"
	"errors"
	"fmt"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/kajbondu/kajbondu-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateID is returned when a client-supplied _id already exists.
var ErrDuplicateID = errors.New("a booking with this id already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// Create inserts b exactly as given and returns its _id, which the driver
// generates when b has none.
func (s *Store) Create(ctx context.Context, b models.Booking) (any, error) {
	res, err := s.c.InsertOne(ctx, b)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return res.InsertedID, nil
}

// FindByEmail returns the bookings whose email field equals email exactly.
func (s *Store) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{models.BookingEmailField: email})
}

// List returns every booking.
func (s *Store) List(ctx context.Context) ([]models.Booking, error) {
	return s.find(ctx, bson.M{})
}

// Delete removes the booking with the given id. Deleting an id that does not
// exist is not an error; the result reports DeletedCount 0.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{models.IDField: id})
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return models.DeleteResult{Acknowledged: false}, nil
	}
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete booking %s: %w", id.Hex(), err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Booking{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return out, nil
}
