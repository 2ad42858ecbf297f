package model

import "time"

type Coords struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
	Address        string  `json:"address"`
	Title          string  `json:"title"`
}

type Restaurant struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	ImageURL    string    `json:"imageUrl"`
	Foods       []string  `json:"foods"`
	Time        string    `json:"time"`
	Pickup      bool      `json:"pickup"`
	Delivery    bool      `json:"delivery"`
	IsOpen      bool      `json:"isOpen"`
	LogoURL     string    `json:"logoUrl"`
	Rating      float64   `json:"rating" validate:"min=1,max=5"`
	RatingCount int       `json:"ratingCount" validate:"min=0"`
	Code        string    `json:"code"`
	Coords      Coords    `json:"coords"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewRestaurant returns a restaurant carrying the defaults a create request
// starts from; request fields are decoded over it.
func NewRestaurant() Restaurant {
	return Restaurant{
		Foods:    []string{},
		Pickup:   true,
		Delivery: true,
		IsOpen:   true,
		Rating:   1,
	}
}
