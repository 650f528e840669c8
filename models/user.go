package models

import "time"

// User is an account that can sign in and manage employee records.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	ID        string    `json:"user_id" bson:"_id" db:"id"`
	Username  string    `json:"username" bson:"username" db:"username"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Password  string    `json:"-" bson:"password" db:"password"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}
