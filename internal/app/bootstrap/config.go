// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// defaultCORSOrigins are the front-ends allowed to call the API.
const defaultCORSOrigins = "http://localhost:5173,https://kajbondu.web.app,https://effulgent-moonbeam-41ff3e.netlify.app"

// appConfigKeys defines the configuration keys for kajBondu.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, mongo_database, etc.
//   - Environment variables: KAJBONDU_MONGO_URI, KAJBONDU_MONGO_USER, etc.
//   - Command-line flags: --mongo_uri, --mongo_user, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "kajBondu", Desc: "MongoDB database name"},
	{Name: "mongo_user", Default: "", Desc: "MongoDB username (overrides credentials in the URI)"},
	{Name: "mongo_password", Default: "", Desc: "MongoDB password"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},

	{Name: "services_collection", Default: "kajBonduDB", Desc: "Collection holding services"},
	{Name: "bookings_collection", Default: "bookingDB", Desc: "Collection holding bookings"},
	{Name: "workers_collection", Default: "workerDB", Desc: "Collection holding worker applications"},

	{Name: "cors_allowed_origins", Default: defaultCORSOrigins, Desc: "Comma-separated list of origins allowed by CORS"},
	{Name: "max_body_bytes", Default: 1 << 20, Desc: "Largest accepted request body in bytes (default: 1 MiB)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, KAJBONDU_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KAJBONDU", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	maxPool, err := poolSize(appValues, "mongo_max_pool_size")
	if err != nil {
		return nil, AppConfig{}, err
	}
	minPool, err := poolSize(appValues, "mongo_min_pool_size")
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoUser:        appValues.String("mongo_user"),
		MongoPassword:    appValues.String("mongo_password"),
		MongoMaxPoolSize: maxPool,
		MongoMinPoolSize: minPool,

		ServicesCollection: appValues.String("services_collection"),
		BookingsCollection: appValues.String("bookings_collection"),
		WorkersCollection:  appValues.String("workers_collection"),

		CORSAllowedOrigins: splitList(appValues.String("cors_allowed_origins")),
		MaxBodyBytes:       int64(appValues.Int("max_body_bytes")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configurations that cannot work, before any
// connection is attempted.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	var problems []string
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		problems = append(problems, "mongo_database is required")
	}
	if appCfg.MongoPassword != "" && appCfg.MongoUser == "" {
		problems = append(problems, "mongo_password is set but mongo_user is empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize && appCfg.MongoMaxPoolSize != 0 {
		problems = append(problems, "mongo_min_pool_size exceeds mongo_max_pool_size")
	}
	for _, c := range []struct{ key, name string }{
		{"services_collection", appCfg.ServicesCollection},
		{"bookings_collection", appCfg.BookingsCollection},
		{"workers_collection", appCfg.WorkersCollection},
	} {
		if strings.TrimSpace(c.name) == "" {
			problems = append(problems, c.key+" is required")
		}
	}
	if len(appCfg.CORSAllowedOrigins) == 0 {
		problems = append(problems, "cors_allowed_origins must list at least one origin")
	}
	for _, o := range appCfg.CORSAllowedOrigins {
		// Credentialed CORS responses cannot use a wildcard origin.
		if o == "*" {
			problems = append(problems, "cors_allowed_origins cannot contain '*' because credentials are allowed")
		}
	}
	if appCfg.MaxBodyBytes <= 0 {
		problems = append(problems, "max_body_bytes must be positive")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// poolSize reads a pool size setting, rejecting negative values before they
// wrap around as uint64.
func poolSize(values config.AppConfigValues, key string) (uint64, error) {
	n := values.Int(key)
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative (got %d)", key, n)
	}
	return uint64(n), nil
}

// splitList parses a comma-separated setting, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
