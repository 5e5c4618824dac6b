package model

// Song is immutable once created and globally unique by name. Playlists
// share songs by reference.
type Song struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	Name     string `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Band     string `json:"band" gorm:"size:255;not null"`
	URL      string `json:"url" gorm:"size:767;not null"`
	Duration int    `json:"duration" gorm:"not null"` // seconds, strictly positive
}
