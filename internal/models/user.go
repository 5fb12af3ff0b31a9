package models

// User represents a registered account. The password field holds a bcrypt
// hash and is never serialized.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser is the accepted payload for signup.
type InsertUser struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
