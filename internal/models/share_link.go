package models

import "time"

// ShareLink maps a public hash to the user whose brain it exposes.
type ShareLink struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

// SharedBrain is the public, read-only view behind a share link.
type SharedBrain struct {
	Username string    `json:"username"`
	Content  []Content `json:"content"`
}
