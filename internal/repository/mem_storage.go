package repository

import (
	"context"
	"sync"
	"time"

	"github.com/halland-longevity/backend/internal/model"
)

// MemStorage is the in-memory Storage used in demo mode and in tests.
// Everything lives in per-entity maps guarded by one mutex; ids are
// assigned from per-entity counters starting at 1. Data does not survive
// a restart.
type MemStorage struct {
	mu sync.Mutex

	users              map[int64]*model.User
	contactMessages    map[int64]*model.ContactMessage
	subscriptions      map[int64]*model.NewsletterSubscription
	nextUserID         int64
	nextContactID      int64
	nextSubscriptionID int64
}

// NewMemStorage creates an empty in-memory store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:              make(map[int64]*model.User),
		contactMessages:    make(map[int64]*model.ContactMessage),
		subscriptions:      make(map[int64]*model.NewsletterSubscription),
		nextUserID:         1,
		nextContactID:      1,
		nextSubscriptionID: 1,
	}
}

var _ Storage = (*MemStorage)(nil)

// CreateContactMessage assigns the next id and the creation timestamp and
// stores a copy of the input. Id assignment and the map write happen under
// the same lock, so ids are never reused even under concurrent creates.
func (s *MemStorage) CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &model.ContactMessage{
		ID:        s.nextContactID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Interest:  in.Interest,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.nextContactID++
	s.contactMessages[msg.ID] = msg
	return msg, nil
}

func (s *MemStorage) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.contactMessages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return msg, nil
}

// ListContactMessages returns all stored messages. Order is not part of
// the contract.
func (s *MemStorage) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.ContactMessage, 0, len(s.contactMessages))
	for _, msg := range s.contactMessages {
		out = append(out, msg)
	}
	return out, nil
}

func (s *MemStorage) CreateNewsletterSubscription(ctx context.Context, in *model.NewsletterSubscriptionInput) (*model.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &model.NewsletterSubscription{
		ID:        s.nextSubscriptionID,
		Email:     in.Email,
		CreatedAt: time.Now().UTC(),
	}
	s.nextSubscriptionID++
	s.subscriptions[sub.ID] = sub
	return sub, nil
}

func (s *MemStorage) GetNewsletterSubscription(ctx context.Context, id int64) (*model.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sub, nil
}

// GetNewsletterSubscriptionByEmail does a linear scan; the collection is
// small enough that an index is not worth carrying.
func (s *MemStorage) GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subscriptions {
		if sub.Email == email {
			return sub, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) ListNewsletterSubscriptions(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.NewsletterSubscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		out = append(out, sub)
	}
	return out, nil
}

func (s *MemStorage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateUser(ctx context.Context, in *model.UserInput) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &model.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user, nil
}

// Ping always succeeds; there is no backing medium to be unreachable.
func (s *MemStorage) Ping(ctx context.Context) error {
	return nil
}
