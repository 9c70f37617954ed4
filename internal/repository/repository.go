package repository

import (
	"context"
	"database/sql"
	"errors"

	"second_brain/internal/models"
)

// ErrUsernameTaken is returned by Authorization.Create when the username is already stored.
var ErrUsernameTaken = errors.New("username already taken")

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type ContentRepo interface {
	Create(ctx context.Context, c models.Content) error
	ListByUser(ctx context.Context, userID int) ([]models.Content, error)
	// DeleteByIDAndUser reports false when no row matched both id and owner.
	DeleteByIDAndUser(ctx context.Context, id string, userID int) (bool, error)
}

type LinkRepo interface {
	GetByUser(ctx context.Context, userID int) (*models.ShareLink, error)
	GetByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	// CreateIfAbsent reports false when the user already has a link or the hash is taken.
	CreateIfAbsent(ctx context.Context, userID int, hash string) (bool, error)
	DeleteByUser(ctx context.Context, userID int) error
}

type Repository struct {
	Auth    Authorization
	Content ContentRepo
	Link    LinkRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(db),
		Content: NewContentSQLite(db),
		Link:    NewLinkSQLite(db),
	}
}
