package model

// User is a reserved capability: the storage layer can create and look up
// users, but no endpoint currently does. Kept for future admin login work.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"not null;uniqueIndex"`
	Password string `json:"-" gorm:"not null"`
}

// TableName maps the model to the users table.
func (User) TableName() string { return "users" }

// UserInput is the insert shape for a user.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
