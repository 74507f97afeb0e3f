package models

import "go.mongodb.org/mongo-driver/bson"

// WorkerApplication is a submission from someone applying to work through
// the marketplace. The server does not interpret any of its fields.
type WorkerApplication bson.M
