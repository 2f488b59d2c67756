package models

import "time"

// Image is the metadata row for an uploaded file. The bytes themselves
// live in the blob store; URL points at where they are served from.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
}
