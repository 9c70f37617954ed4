package models

import "time"

// Content types accepted by the API.
const (
	TypeYouTube   = "youtube"
	TypeTwitter   = "twitter"
	TypeInstagram = "instagram"
	TypeSpotify   = "spotify"
	TypeLinkedIn  = "linkedin"
	TypeLink      = "link"
	TypeUnknown   = "unknown"
)

// ContentTypes lists every value the type column may hold.
var ContentTypes = []string{
	TypeYouTube,
	TypeTwitter,
	TypeInstagram,
	TypeSpotify,
	TypeLinkedIn,
	TypeLink,
	TypeUnknown,
}

// Content is a single saved item owned by one user.
type Content struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Link      string    `json:"link"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"` // no tag creation path yet, always empty
	CreatedAt time.Time `json:"created_at"`
}
