package database

import "fmt"

// Config is the postgres connection section of the application properties
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

// DSN returns the keyword/value connection string understood by lib/pq and pgx
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.Schema)
}
