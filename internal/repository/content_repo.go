package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"second_brain/internal/models"

	"github.com/google/uuid"
)

type ContentSQLite struct {
	db *sql.DB
}

func NewContentSQLite(db *sql.DB) *ContentSQLite { return &ContentSQLite{db: db} }

var _ ContentRepo = (*ContentSQLite)(nil)

const (
	insertContentSQL = `
		INSERT INTO contents (id, user_id, link, type, title, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectContentByUserSQL = `
		SELECT id, user_id, link, type, title, created_at
		FROM contents WHERE user_id = ?
		ORDER BY created_at ASC, rowid ASC
	`
	deleteContentSQL = `DELETE FROM contents WHERE id = ? AND user_id = ?`
)

// Create inserts a content row. If ID or CreatedAt are empty, they’re set.
func (r *ContentSQLite) Create(ctx context.Context, c models.Content) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.ExecContext(ctx, insertContentSQL,
		c.ID,
		c.UserID,
		c.Link,
		c.Type,
		c.Title,
		c.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("insert content for user %d: %w", c.UserID, err)
	}
	return nil
}

// ListByUser returns the user's content, oldest first.
func (r *ContentSQLite) ListByUser(ctx context.Context, userID int) ([]models.Content, error) {
	rows, err := r.db.QueryContext(ctx, selectContentByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select content for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Content, 0, 16)
	for rows.Next() {
		var c models.Content
		if err := rows.Scan(&c.ID, &c.UserID, &c.Link, &c.Type, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan content for user %d: %w", userID, err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		c.Tags = []string{}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content for user %d: %w", userID, err)
	}
	return out, nil
}

// DeleteByIDAndUser removes the row only when it belongs to userID.
func (r *ContentSQLite) DeleteByIDAndUser(ctx context.Context, id string, userID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteContentSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete content %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for content %q: %w", id, err)
	}
	return affected > 0, nil
}
