package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"second_brain/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestContentSQLite_Create_FillsDefaults(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewContentSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertContentSQL)).
		WithArgs(sqlmock.AnyArg(), 5, "https://youtu.be/abc", "youtube", "talk", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), models.Content{
		UserID: 5,
		Link:   "https://youtu.be/abc",
		Type:   "youtube",
		Title:  "talk",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestContentSQLite_Create_DBError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewContentSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertContentSQL)).
		WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), models.Content{ID: "x", UserID: 1, Link: "l", Type: "link"})
	if err == nil || !strings.Contains(err.Error(), "insert content") {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}

func TestContentSQLite_ListByUser(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewContentSQLite(db)

	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	rows := sqlmock.NewRows([]string{"id", "user_id", "link", "type", "title", "created_at"}).
		AddRow("a", 9, "https://x.com/p", "twitter", "post", t1).
		AddRow("b", 9, "https://example.org", "link", "", t2)
	mock.ExpectQuery(regexp.QuoteMeta(selectContentByUserSQL)).
		WithArgs(9).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "a" || got[0].Type != "twitter" || got[1].ID != "b" {
		t.Fatalf("unexpected items: %+v", got)
	}
	for _, c := range got {
		if c.Tags == nil || len(c.Tags) != 0 {
			t.Fatalf("expected empty non-nil tags, got %#v", c.Tags)
		}
	}
}

func TestContentSQLite_ListByUser_Empty(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewContentSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectContentByUserSQL)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "link", "type", "title", "created_at"}))

	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestContentSQLite_DeleteByIDAndUser(t *testing.T) {
	cases := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  bool
	}{
		{"owned row deleted", 1, nil, true, false},
		{"missing or foreign row", 0, nil, false, false},
		{"db error", 0, errors.New("locked"), false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewContentSQLite(db)

			exp := mock.ExpectExec(regexp.QuoteMeta(deleteContentSQL)).WithArgs("c1", 2)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}

			got, err := repo.DeleteByIDAndUser(context.Background(), "c1", 2)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("deleted = %v, want %v", got, tc.want)
			}
		})
	}
}
