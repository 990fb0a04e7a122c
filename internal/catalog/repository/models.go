package repository

import "time"

// Title is one playable catalog entry.
type Title struct {
	ID          string
	Name        string
	Genre       string
	Year        int
	DurationMin int
	Synopsis    string
}

// Shelf is a curated, ordered row of titles on the home screen.
type Shelf struct {
	ID        string
	Name      string
	SortOrder int
}

// WatchEvent records one playback of a title.
type WatchEvent struct {
	ID          int64
	TitleID     string
	WatchedAt   time.Time
	PositionSec int
}
