package service

import (
	"context"
	"time"

	"second_brain/internal/logger"
	"second_brain/internal/models"
	"second_brain/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Content manages the items a signed-in user has saved.
type Content interface {
	Add(ctx context.Context, userID int, in ContentInput) (models.Content, error)
	List(ctx context.Context, userID int) ([]models.Content, error)
	Delete(ctx context.Context, userID int, contentID string) error
}

// Brain manages the public share link of a user's collection.
type Brain interface {
	Share(ctx context.Context, userID int) (string, error)
	Unshare(ctx context.Context, userID int) error
	Shared(ctx context.Context, hash string) (models.SharedBrain, error)
}

// Health reports dependency connectivity.
type Health interface {
	PingStore(ctx context.Context) error
	Check(ctx context.Context) HealthReport
}

// ShareCache is an optional lookaside cache for share hash → owner id.
type ShareCache interface {
	GetOwner(ctx context.Context, hash string) (int, bool, error)
	SetOwner(ctx context.Context, hash string, userID int) error
	Delete(ctx context.Context, hash string) error
	Ping(ctx context.Context) error
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Root Service aggregates all sub-services.
type Service struct {
	Authorization
	Content
	Brain
	Health
}

// Options carries the settings the sub-services need beyond repositories.
type Options struct {
	JWTSecret       string
	TokenTTL        time.Duration // 0 issues tokens without expiry
	ShareHashLength int
	ShareCache      ShareCache // nil disables caching
	Store           Pinger
	Log             *logger.Logger // optional
}

// NewService wires repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	brain := NewBrainService(repos.Link, repos.Auth, repos.Content, opts.ShareCache, opts.ShareHashLength)
	brain.log = opts.Log

	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.JWTSecret, opts.TokenTTL),
		Content:       NewContentService(repos.Content),
		Brain:         brain,
		Health:        NewHealthService(opts.Store, opts.ShareCache),
	}
}
