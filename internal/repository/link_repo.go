package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"second_brain/internal/models"
)

type LinkSQLite struct {
	db *sql.DB
}

func NewLinkSQLite(db *sql.DB) *LinkSQLite { return &LinkSQLite{db: db} }

var _ LinkRepo = (*LinkSQLite)(nil)

const (
	selectLinkByUserSQL = `SELECT id, user_id, hash, created_at FROM share_links WHERE user_id = ?`
	selectLinkByHashSQL = `SELECT id, user_id, hash, created_at FROM share_links WHERE hash = ?`
	insertLinkSQL       = `INSERT INTO share_links (user_id, hash, created_at) VALUES (?, ?, ?) ON CONFLICT DO NOTHING`
	deleteLinkSQL       = `DELETE FROM share_links WHERE user_id = ?`
)

// GetByUser returns the user's share link or (nil, nil).
func (r *LinkSQLite) GetByUser(ctx context.Context, userID int) (*models.ShareLink, error) {
	l, err := scanLink(r.db.QueryRowContext(ctx, selectLinkByUserSQL, userID))
	if err != nil {
		return nil, fmt.Errorf("select share link for user %d: %w", userID, err)
	}
	return l, nil
}

// GetByHash returns the link registered under hash or (nil, nil).
func (r *LinkSQLite) GetByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	l, err := scanLink(r.db.QueryRowContext(ctx, selectLinkByHashSQL, hash))
	if err != nil {
		return nil, fmt.Errorf("select share link by hash: %w", err)
	}
	return l, nil
}

// CreateIfAbsent inserts the mapping unless either unique column already holds the value.
func (r *LinkSQLite) CreateIfAbsent(ctx context.Context, userID int, hash string) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertLinkSQL, userID, hash, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("insert share link for user %d: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for share link of user %d: %w", userID, err)
	}
	return affected > 0, nil
}

// DeleteByUser removes the user's share link; missing rows are not an error.
func (r *LinkSQLite) DeleteByUser(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, deleteLinkSQL, userID); err != nil {
		return fmt.Errorf("delete share link for user %d: %w", userID, err)
	}
	return nil
}

func scanLink(row *sql.Row) (*models.ShareLink, error) {
	var l models.ShareLink
	if err := row.Scan(&l.ID, &l.UserID, &l.Hash, &l.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return &l, nil
}
