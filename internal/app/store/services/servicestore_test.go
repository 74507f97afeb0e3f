package servicestore_test

import (
	"context"
	"errors"
	"testing"

	servicestore "github.com/kajbondu/kajbondu-server/internal/app/store/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "kajBondu.kajBonduDB"

func TestStore_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "category", Value: "Plumbing"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "category", Value: "Cleaning"}, {Key: "price", Value: int32(500)}},
		))
		store := servicestore.New(mt.DB, "kajBonduDB")

		got, err := store.List(context.Background())

		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, id1, got[0]["_id"])
		assert.Equal(mt, "Cleaning", got[1]["category"])
		assert.EqualValues(mt, 500, got[1]["price"])
	})

	mt.Run("empty collection gives empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		store := servicestore.New(mt.DB, "kajBonduDB")

		got, err := store.List(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))
		store := servicestore.New(mt.DB, "kajBonduDB")

		_, err := store.List(context.Background())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "not authorized")
	})
}

func TestStore_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "title", Value: "AC Repair"}},
		))
		store := servicestore.New(mt.DB, "kajBonduDB")

		got, err := store.GetByID(context.Background(), id)

		require.NoError(mt, err)
		assert.Equal(mt, "AC Repair", got["title"])

		filter := mt.GetStartedEvent().Command.Lookup("filter", "_id")
		assert.Equal(mt, id, filter.ObjectID())
	})

	mt.Run("not found wraps ErrNoDocuments", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		store := servicestore.New(mt.DB, "kajBonduDB")

		_, err := store.GetByID(context.Background(), primitive.NewObjectID())

		assert.True(mt, errors.Is(err, mongo.ErrNoDocuments))
	})
}

func TestStore_FindByCategory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sends anchored case-insensitive regex", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "category", Value: "Home Repair"}},
		))
		store := servicestore.New(mt.DB, "kajBonduDB")

		got, err := store.FindByCategory(context.Background(), "home repair")

		require.NoError(mt, err)
		require.Len(mt, got, 1)

		pattern, opts, ok := mt.GetStartedEvent().Command.Lookup("filter", "category").RegexOK()
		require.True(mt, ok, "category filter should be a regex")
		assert.Equal(mt, "^home repair$", pattern)
		assert.Equal(mt, "i", opts)
	})
}

func TestCategoryPattern_QuotesMetacharacters(t *testing.T) {
	re := servicestore.CategoryPattern("c++ (advanced).*")

	assert.Equal(t, `^c\+\+ \(advanced\)\.\*$`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}
