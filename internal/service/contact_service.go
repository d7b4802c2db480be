package service

import (
	"context"
	"log/slog"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/repository"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a validated contact message and returns the stored
	// record with its storage-assigned id and timestamp.
	Submit(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error)

	// List returns all stored contact messages.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	store repository.Storage
}

// NewContactService creates a ContactService backed by the given storage.
func NewContactService(store repository.Storage) ContactService {
	return &contactServiceImpl{store: store}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	msg, err := s.store.CreateContactMessage(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.Info("contact message received",
		"id", msg.ID,
		"email", msg.Email,
		"interest", msg.Interest,
	)
	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.store.ListContactMessages(ctx)
}
