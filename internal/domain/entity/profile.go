package entity

import (
	"time"
)

// Profile is the single business-owner record. At most one instance ever
// exists; it is lazily created with placeholder values on first read.
type Profile struct {
	ID             string    `json:"id" firestore:"id"`
	Name           string    `json:"name" firestore:"name"`
	Bio            string    `json:"bio" firestore:"bio"`
	BioEn          string    `json:"bioEn" firestore:"bioEn"`
	Photo          string    `json:"photo,omitempty" firestore:"photo,omitempty"`
	PhotoStorageID string    `json:"photoStorageId,omitempty" firestore:"photoStorageId,omitempty"`
	Email          string    `json:"email" firestore:"email"`
	Phone          string    `json:"phone" firestore:"phone"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}
