package entity

import (
	"time"
)

type GalleryPhoto struct {
	ID        string    `json:"id" firestore:"id"`
	ImageURL  string    `json:"imageUrl" firestore:"imageUrl"`
	StorageID string    `json:"storageId" firestore:"storageId"`
	Caption   string    `json:"caption,omitempty" firestore:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
