package service

import (
	"context"
	"errors"
	"testing"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/repository"
)

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStorage()
	svc := NewContactService(store)

	msg, err := svc.Submit(ctx, &model.ContactMessageInput{
		FirstName: "Jo",
		LastName:  "Li",
		Email:     "jo@example.com",
		Interest:  "research",
		Message:   "Hello there!",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if msg.ID != 1 {
		t.Errorf("expected id 1, got %d", msg.ID)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	stored, err := store.GetContactMessage(ctx, msg.ID)
	if err != nil {
		t.Fatalf("GetContactMessage failed: %v", err)
	}
	if stored.Email != "jo@example.com" {
		t.Errorf("expected stored email jo@example.com, got %q", stored.Email)
	}
}

type failingContactStorage struct {
	*repository.MemStorage
}

func (f *failingContactStorage) CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	return nil, errors.New("db connection lost")
}

func TestContactService_Submit_StorageError(t *testing.T) {
	svc := NewContactService(&failingContactStorage{MemStorage: repository.NewMemStorage()})
	if _, err := svc.Submit(context.Background(), &model.ContactMessageInput{}); err == nil {
		t.Error("expected storage error to propagate")
	}
}
