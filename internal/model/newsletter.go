package model

import "time"

// NewsletterSubscription represents a newsletter signup. Emails are meant
// to be unique across the collection, but uniqueness is enforced by the
// handler's pre-create lookup, not by storage — see the repository docs.
type NewsletterSubscription struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

// TableName maps the model to the newsletter_subscriptions table.
func (NewsletterSubscription) TableName() string { return "newsletter_subscriptions" }

// NewsletterSubscriptionInput is the insert shape for a subscription.
type NewsletterSubscriptionInput struct {
	Email string `json:"email"`
}
