package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ConnectDB establishes a connection pool to the PostgreSQL database.
func ConnectDB(databaseURL string) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), databaseURL)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Info().Msg("Connected to PostgreSQL")
				return pool, nil
			}
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).
			Msgf("Failed to connect to database, retrying in %v", retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist.
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('user', 'admin')) DEFAULT 'user',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS services (
		record_id SERIAL PRIMARY KEY,
		id TEXT UNIQUE NOT NULL, -- application-assigned id, not the storage key
		icon TEXT NOT NULL,
		title TEXT NOT NULL,
		short_description TEXT NOT NULL,
		full_description TEXT NOT NULL,
		long_description TEXT NOT NULL,
		color TEXT NOT NULL,
		gradient TEXT NOT NULL,
		features TEXT[] NOT NULL DEFAULT '{}',
		benefits TEXT[] NOT NULL DEFAULT '{}',
		use_cases TEXT[] NOT NULL DEFAULT '{}',
		technologies TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS portfolio (
		record_id SERIAL PRIMARY KEY,
		id TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL,
		tagline TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL,
		color TEXT NOT NULL,
		icon TEXT,
		live_link TEXT,
		description TEXT NOT NULL,
		full_description TEXT NOT NULL,
		technologies TEXT[] NOT NULL DEFAULT '{}',
		features TEXT[] NOT NULL DEFAULT '{}',
		results TEXT[] NOT NULL DEFAULT '{}',
		client TEXT NOT NULL,
		duration TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT,
		service TEXT,
		message TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('new', 'read', 'replied')) DEFAULT 'new',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_services_created_at ON services(created_at);
	CREATE INDEX IF NOT EXISTS idx_portfolio_created_at ON portfolio(created_at);
	CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at);
	CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}
