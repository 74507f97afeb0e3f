// internal/app/store/workers/workerstore.go
package workerstore

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
var ErrDuplicateID = errors.New("a worker application with this id already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// Create inserts app as given and returns its _id.
func (s *Store) Create(ctx context.Context, app models.WorkerApplication) (any, error) {
	res, err := s.c.InsertOne(ctx, app)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("insert worker application: %w", err)
	}
	return res.InsertedID, nil
}

// List returns every worker application.
func (s *Store) List(ctx context.Context) ([]models.WorkerApplication, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find worker applications: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.WorkerApplication{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode worker applications: %w", err)
	}
	return out, nil
}

// Delete removes a worker application by ID. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{models.IDField: id})
	if err != nil {
		return 0, fmt.Errorf("delete worker application %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
