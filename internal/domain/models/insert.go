package models

// IDField is the primary key of every collection.
const IDField = "_id"

// InsertResponse is returned from create routes with status 201.
// InsertedID is usually a primitive.ObjectID, but a client may supply its
// own _id of any type.
type InsertResponse struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}
