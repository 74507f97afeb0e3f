// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers the HTTP port, TLS, logging level and request
// timeouts. Everything below is specific to kajBondu and comes from
// KAJBONDU_* environment variables, config files or flags (see LoadConfig).
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (mongodb:// or mongodb+srv://)
	MongoDatabase    string // Database name within MongoDB
	MongoUser        string // Optional; overrides credentials in the URI
	MongoPassword    string // Requires MongoUser
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Collection names. The defaults match the production collections.
	ServicesCollection string
	BookingsCollection string
	WorkersCollection  string

	// CORS
	CORSAllowedOrigins []string // exact origins allowed to call the API with credentials

	// Request limits
	MaxBodyBytes int64 // largest accepted POST body
}
