package handlers

// User facing messages. Internal causes are logged, never returned.
const (
	msgInternal         = "internal server error"
	msgSignedUp         = "user signed up"
	msgContentAdded     = "content added"
	msgContentDeleted   = "content deleted"
	msgLinkRemoved      = "removed link"
	msgStoreUnavailable = "database not available"
	msgRateLimited      = "too many requests, try again later"

	msgMissingAuth   = "missing Authorization header"
	msgInvalidAuth   = "invalid Authorization header format"
	msgInvalidToken  = "invalid or expired token"
	msgInvalidBody   = "invalid request body"
	msgShareRequired = "share flag is required"
)

// messageResponse is the generic {"message": ...} body.
type messageResponse struct {
	Message string `json:"message" example:"content added"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
