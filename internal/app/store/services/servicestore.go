// internal/app/store/services/servicestore.go
package servicestore

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kajbondu/kajbondu-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store reads the services catalogue. Services are managed outside this
// server, so there is no write path.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// List returns every service.
func (s *Store) List(ctx context.Context) ([]models.Service, error) {
	return s.find(ctx, bson.M{})
}

// GetByID returns the service with the given id, or an error wrapping
// mongo.ErrNoDocuments when there is none.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{models.IDField: id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("find service %s: %w", id.Hex(), err)
	}
	return svc, nil
}

// FindByCategory returns services whose category equals category, ignoring
// case. The input is matched literally: regex metacharacters are escaped.
func (s *Store) FindByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return s.find(ctx, bson.M{models.ServiceCategoryField: CategoryPattern(category)})
}

// CategoryPattern builds the anchored, case-insensitive regex used for
// category lookups.
func CategoryPattern(category string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(category) + "$", Options: "i"}
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Service, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Service{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return out, nil
}
