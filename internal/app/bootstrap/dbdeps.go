// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the single MongoDB client shared by every request.
type DBDeps struct {
	KajBonduMongoClient   *mongo.Client
	KajBonduMongoDatabase *mongo.Database
}
