package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/halland-longevity/backend/internal/model"
)

// GormStorage is the relational Storage implementation. The database
// assigns ids (auto-increment primary keys) and creation timestamps;
// concurrency control is delegated entirely to the database engine.
type GormStorage struct {
	db *gorm.DB
}

func postgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

func sqliteDialector(path string) gorm.Dialector {
	return sqlite.Open(path)
}

// NewGormStorage opens the database and verifies the connection. An
// unreachable database is a fatal startup condition for the durable
// drivers, not something to discover on the first request.
func NewGormStorage(ctx context.Context, dialector gorm.Dialector) (*GormStorage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &GormStorage{db: db}
	if err := s.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return s, nil
}

var _ Storage = (*GormStorage)(nil)

func (s *GormStorage) CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Interest:  in.Interest,
		Message:   in.Message,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *GormStorage) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	if err := s.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &msg, nil
}

func (s *GormStorage) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	var out []*model.ContactMessage
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) CreateNewsletterSubscription(ctx context.Context, in *model.NewsletterSubscriptionInput) (*model.NewsletterSubscription, error) {
	sub := &model.NewsletterSubscription{Email: in.Email}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *GormStorage) GetNewsletterSubscription(ctx context.Context, id int64) (*model.NewsletterSubscription, error) {
	var sub model.NewsletterSubscription
	if err := s.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &sub, nil
}

func (s *GormStorage) GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var sub model.NewsletterSubscription
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &sub, nil
}

func (s *GormStorage) ListNewsletterSubscriptions(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	var out []*model.NewsletterSubscription
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, in *model.UserInput) (*model.User, error) {
	user := &model.User{Username: in.Username, Password: in.Password}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Ping checks the underlying connection.
func (s *GormStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or updates the three tables. The sqlite driver has
// no separate migration command, so the server calls this at startup for
// that driver; Postgres schemas are managed by cmd/migrate instead.
func (s *GormStorage) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.ContactMessage{},
		&model.NewsletterSubscription{},
	)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
