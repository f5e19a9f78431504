package models

import "time"

type Course struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	Title       string    `json:"title" bson:"title" db:"title"`
	Description string    `json:"description" bson:"description" db:"description"`
	Icon        string    `json:"icon" bson:"icon" db:"icon"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
