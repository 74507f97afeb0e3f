package models

import "go.mongodb.org/mongo-driver/bson"

// Service is a service offered on the marketplace. The server only
// interprets the category field; everything else is stored as given.
type Service bson.M

// Category field on service documents.
const ServiceCategoryField = "category"
