package entity

import (
	"time"
)

const (
	StatusAvailable = "available"
	StatusRented    = "rented"
	StatusSold      = "sold"

	TypeRent = "rent"
	TypeSale = "sale"
)

// ImageRef points at one uploaded image: the public URL plus the media
// host's storage identifier needed to delete the asset later.
type ImageRef struct {
	URL       string `json:"url" firestore:"url"`
	StorageID string `json:"storageId" firestore:"storageId"`
}

// ApartmentContact is the per-listing contact block shown on the detail page.
type ApartmentContact struct {
	Name     string `json:"name,omitempty" firestore:"name,omitempty"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
}

type Apartment struct {
	ID            string           `json:"id" firestore:"id"`
	Title         string           `json:"title" firestore:"title"`
	Description   string           `json:"description" firestore:"description"`
	Price         float64          `json:"price" firestore:"price"`
	Status        string           `json:"status" firestore:"status"`
	Type          string           `json:"type" firestore:"type"`
	Images        []ImageRef       `json:"images" firestore:"images"`
	Location      string           `json:"location,omitempty" firestore:"location,omitempty"`
	Rooms         int              `json:"rooms,omitempty" firestore:"rooms,omitempty"`
	Area          float64          `json:"area,omitempty" firestore:"area,omitempty"`
	Floor         int              `json:"floor,omitempty" firestore:"floor,omitempty"`
	BuiltYear     int              `json:"builtYear,omitempty" firestore:"builtYear,omitempty"`
	Features      []string         `json:"features" firestore:"features"`
	Deposit       float64          `json:"deposit,omitempty" firestore:"deposit,omitempty"`
	Utilities     float64          `json:"utilities,omitempty" firestore:"utilities,omitempty"`
	AvailableFrom *time.Time       `json:"availableFrom,omitempty" firestore:"availableFrom,omitempty"`
	Contact       ApartmentContact `json:"contact" firestore:"contact"`
	CreatedAt     time.Time        `json:"createdAt" firestore:"createdAt"`
}
