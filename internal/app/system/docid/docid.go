// Package docid parses document identifiers taken from request paths.
package docid

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalid is returned for any value that is not a 24-digit hex ObjectID.
var ErrInvalid = errors.New("invalid document id")

// Parse converts a path segment to an ObjectID.
func Parse(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, ErrInvalid
	}
	return id, nil
}
