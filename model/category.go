package model

import "time"

type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
