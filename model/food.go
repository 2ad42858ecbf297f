package model

import "time"

type Food struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gt=0"`
	ImageURL    string    `json:"imageUrl"`
	FoodTags    string    `json:"foodTags"`
	Category    string    `json:"category"`
	Code        string    `json:"code"`
	IsAvailable bool      `json:"isAvailable"`
	Restaurant  string    `json:"restaurant" validate:"required"`
	Rating      float64   `json:"rating" validate:"min=1,max=5"`
	RatingCount int       `json:"ratingCount" validate:"min=0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewFood returns a food carrying the defaults a create request starts from.
func NewFood() Food {
	return Food{
		IsAvailable: true,
		Rating:      5,
	}
}
