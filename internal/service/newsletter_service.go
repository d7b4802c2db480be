package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/repository"
)

// NewsletterService defines the business logic for newsletter signups.
type NewsletterService interface {
	// Subscribe stores a new subscription for the given email. If the
	// email is already subscribed, the existing record is returned with
	// already=true and no new record is created.
	//
	// The duplicate check is a lookup followed by a create, not an atomic
	// operation: two concurrent submissions of the same email can both
	// pass the lookup and create two records. The in-memory store accepts
	// this as a documented limitation; the relational schema carries a
	// unique index on email that rejects the loser.
	Subscribe(ctx context.Context, in *model.NewsletterSubscriptionInput) (sub *model.NewsletterSubscription, already bool, err error)

	// List returns all stored subscriptions.
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

// newsletterServiceImpl is the production implementation of NewsletterService.
type newsletterServiceImpl struct {
	store repository.Storage
}

// NewNewsletterService creates a NewsletterService backed by the given storage.
func NewNewsletterService(store repository.Storage) NewsletterService {
	return &newsletterServiceImpl{store: store}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, in *model.NewsletterSubscriptionInput) (*model.NewsletterSubscription, bool, error) {
	existing, err := s.store.GetNewsletterSubscriptionByEmail(ctx, in.Email)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("look up subscription: %w", err)
	}

	sub, err := s.store.CreateNewsletterSubscription(ctx, in)
	if err != nil {
		return nil, false, fmt.Errorf("create subscription: %w", err)
	}
	slog.Info("newsletter subscription created", "id", sub.ID, "email", sub.Email)
	return sub, false, nil
}

func (s *newsletterServiceImpl) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	return s.store.ListNewsletterSubscriptions(ctx)
}
