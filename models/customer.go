package models

import "time"

// Customer is a grooming client who owns one or more dogs.
type Customer struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Phone      string    `bson:"phone" json:"phone"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Occupation string    `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Address    string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
