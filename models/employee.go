package models

import "time"

type Employee struct {
	ID            string     `json:"employee_id" bson:"_id" db:"id"`
	FirstName     string     `json:"first_name" bson:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" bson:"last_name" db:"last_name"`
	Email         string     `json:"email" bson:"email" db:"email"`
	Position      string     `json:"position,omitempty" bson:"position,omitempty" db:"position"`
	Department    string     `json:"department,omitempty" bson:"department,omitempty" db:"department"`
	Salary        *float64   `json:"salary,omitempty" bson:"salary,omitempty" db:"salary"`
	DateOfJoining *time.Time `json:"date_of_joining,omitempty" bson:"date_of_joining,omitempty" db:"date_of_joining"`
	ProfileImage  *string    `json:"profile_image" bson:"profile_image" db:"profile_image"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at" db:"updated_at"`
}
