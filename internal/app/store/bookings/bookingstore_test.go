package bookingstore_test

import (
	"context"
	"testing"

	bookingstore "github.com/kajbondu/kajbondu-server/internal/app/store/bookings"
	"github.com/kajbondu/kajbondu-server/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "kajBondu.bookingDB"

func TestStore_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("generates id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := bookingstore.New(mt.DB, "bookingDB")

		id, err := store.Create(context.Background(), models.Booking{"email": "a@b.com", "service": "Cleaning"})

		require.NoError(mt, err)
		oid, ok := id.(primitive.ObjectID)
		require.True(mt, ok, "expected ObjectID, got %T", id)
		assert.False(mt, oid.IsZero())
	})

	mt.Run("keeps client id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := bookingstore.New(mt.DB, "bookingDB")

		id, err := store.Create(context.Background(), models.Booking{"_id": "custom-1", "email": "a@b.com"})

		require.NoError(mt, err)
		assert.Equal(mt, "custom-1", id)
	})

	mt.Run("duplicate id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))
		store := bookingstore.New(mt.DB, "bookingDB")

		_, err := store.Create(context.Background(), models.Booking{"_id": "custom-1"})

		assert.ErrorIs(mt, err, bookingstore.ErrDuplicateID)
	})
}

func TestStore_FindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters by exact email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@b.com"}},
		))
		store := bookingstore.New(mt.DB, "bookingDB")

		got, err := store.FindByEmail(context.Background(), "a@b.com")

		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, "a@b.com", got[0]["email"])

		filter := mt.GetStartedEvent().Command.Lookup("filter", "email")
		assert.Equal(mt, "a@b.com", filter.StringValue())
	})
}

func TestStore_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		store := bookingstore.New(mt.DB, "bookingDB")

		got, err := store.List(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})
}

func TestStore_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		store := bookingstore.New(mt.DB, "bookingDB")

		res, err := store.Delete(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Equal(mt, models.DeleteResult{Acknowledged: true, DeletedCount: 1}, res)
	})

	mt.Run("nothing to delete is not an error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		store := bookingstore.New(mt.DB, "bookingDB")

		res, err := store.Delete(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Equal(mt, models.DeleteResult{Acknowledged: true, DeletedCount: 0}, res)
	})
}
