// Package repository provides the entity store behind the form endpoints.
// Two interchangeable implementations exist: an in-memory store for demo
// mode and a gorm-backed relational store for production. The backend is
// chosen once at startup; handlers never branch on it.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/halland-longevity/backend/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Storage is the capability set shared by all backends. Create operations
// assign the record id and creation timestamp; records are immutable after
// creation and nothing exposes update or delete.
//
// The User operations are a reserved capability with no HTTP caller.
type Storage interface {
	// Contact messages
	CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error)
	GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error)

	// Newsletter subscriptions. Email uniqueness is advisory: callers
	// dedupe with GetNewsletterSubscriptionByEmail before creating, and
	// that check-then-create is not atomic.
	CreateNewsletterSubscription(ctx context.Context, in *model.NewsletterSubscriptionInput) (*model.NewsletterSubscription, error)
	GetNewsletterSubscription(ctx context.Context, id int64) (*model.NewsletterSubscription, error)
	GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	ListNewsletterSubscriptions(ctx context.Context) ([]*model.NewsletterSubscription, error)

	// Users
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, in *model.UserInput) (*model.User, error)

	// Ping reports whether the backing medium is reachable.
	Ping(ctx context.Context) error
}

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and configures the storage backend.
type Config struct {
	// Driver is one of DriverMemory, DriverPostgres, DriverSQLite.
	Driver string
	// DatabaseURL is the Postgres connection string. Required for the
	// postgres driver; ignored otherwise.
	DatabaseURL string
	// SQLitePath is the database file path for the sqlite driver.
	SQLitePath string
}

// Open constructs the storage backend described by cfg. Missing required
// connection configuration is an error here, at startup, never later per
// request.
func Open(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemStorage(), nil
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("postgres storage requires DATABASE_URL")
		}
		return NewGormStorage(ctx, postgresDialector(cfg.DatabaseURL))
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("sqlite storage requires SQLITE_PATH")
		}
		s, err := NewGormStorage(ctx, sqliteDialector(cfg.SQLitePath))
		if err != nil {
			return nil, err
		}
		// sqlite has no separate migration command
		if err := s.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("migrate sqlite schema: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
