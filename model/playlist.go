package model

import "time"

// Playlist has exactly one author. Songs and likes live in join tables so
// the ownership graph stays relational instead of cyclic object links.
type Playlist struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Description  string    `json:"description" gorm:"type:text"`
	Image        string    `json:"image" gorm:"size:767"`
	AuthorID     string    `json:"-" gorm:"size:36;not null;index"`
	LastModified time.Time `json:"lastModified"` // bumped on every edit

	Songs   []Song `json:"songs" gorm:"-"` // playlist order
	Author  *User  `json:"-" gorm:"-"`
	LikedBy []User `json:"-" gorm:"-"` // insertion order, no duplicates
}

// Duration is the sum of the constituent song durations in seconds.
func (p *Playlist) Duration() int {
	total := 0
	for _, s := range p.Songs {
		total += s.Duration
	}
	return total
}

// PlaylistSong is a row of the ordered playlist/song join table. The same
// song may appear more than once, so position is part of the key.
type PlaylistSong struct {
	PlaylistID string `gorm:"primaryKey;size:36"`
	Position   int    `gorm:"primaryKey"`
	SongID     string `gorm:"size:36;not null;index"`
}

// PlaylistLike is a row of the playlist/user like set. The composite key
// keeps the set duplicate-free; position preserves insertion order.
type PlaylistLike struct {
	PlaylistID string `gorm:"primaryKey;size:36"`
	UserID     string `gorm:"primaryKey;size:36"`
	Position   int    `gorm:"not null"`
}
