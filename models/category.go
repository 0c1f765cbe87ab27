package models

import "time"

// Category is a grouping taxonomy node a provider belongs to. Names are unique
// by convention.
type Category struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Icon          string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Subcategories []string  `bson:"subcategories,omitempty" json:"subcategories,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
