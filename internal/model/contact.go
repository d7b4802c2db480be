package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// ID and CreatedAt are assigned by the storage layer on create; records
// are immutable afterwards.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"firstName" gorm:"column:first_name;not null"`
	LastName  string    `json:"lastName" gorm:"column:last_name;not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone,omitempty"`
	Interest  string    `json:"interest" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

// TableName maps the model to the contact_messages table.
func (ContactMessage) TableName() string { return "contact_messages" }

// ContactMessageInput is the insert shape for a contact message: the fields
// the caller supplies, without the storage-assigned ones.
type ContactMessageInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Interest  string `json:"interest"`
	Message   string `json:"message"`
}
