package cmd

import (
	"fmt"
	"time"
)

// Config holds all runtime settings of the application, read from the
// environment by the entrypoint. When DBHost is empty the application runs
// on the in-memory repositories instead of PostgreSQL.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	StaleOrderTTL        time.Duration
	StaleOrderJobEnabled bool
}

// UsesPostgres reports whether a database host was configured.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN builds the connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
