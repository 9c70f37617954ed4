package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"second_brain/internal/models"
	"second_brain/internal/repository"

	"github.com/google/uuid"
)

// ContentInput is the user-supplied part of a new content item.
type ContentInput struct {
	Link  string
	Title string
	Type  string // optional; inferred from Link when empty
}

type ContentService struct {
	contentRepo repository.ContentRepo
}

func NewContentService(repo repository.ContentRepo) *ContentService {
	return &ContentService{contentRepo: repo}
}

// platformRules are checked in order; the first matching substring wins.
var platformRules = []struct {
	typ     string
	needles []string
}{
	{models.TypeYouTube, []string{"youtube.com", "youtu.be"}},
	{models.TypeTwitter, []string{"twitter.com", "x.com"}},
	{models.TypeInstagram, []string{"instagram.com"}},
	{models.TypeSpotify, []string{"spotify.com"}},
	{models.TypeLinkedIn, []string{"linkedin.com"}},
}

// InferType guesses the content type from the link, falling back to "link".
func InferType(link string) string {
	l := strings.ToLower(link)
	for _, rule := range platformRules {
		for _, needle := range rule.needles {
			if strings.Contains(l, needle) {
				return rule.typ
			}
		}
	}
	return models.TypeLink
}

// normalizeType lower-cases an explicit type and checks it against the enumeration.
func normalizeType(typ string) (string, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	for _, known := range models.ContentTypes {
		if typ == known {
			return typ, nil
		}
	}
	return "", fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, typ)
}

func (s *ContentService) Add(ctx context.Context, userID int, in ContentInput) (models.Content, error) {
	link := strings.TrimSpace(in.Link)
	if link == "" {
		return models.Content{}, fmt.Errorf("%w: link is required", ErrInvalidInput)
	}

	typ := InferType(link)
	if strings.TrimSpace(in.Type) != "" {
		var err error
		if typ, err = normalizeType(in.Type); err != nil {
			return models.Content{}, err
		}
	}

	c := models.Content{
		ID:        uuid.NewString(),
		UserID:    userID,
		Link:      link,
		Type:      typ,
		Title:     strings.TrimSpace(in.Title),
		Tags:      []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contentRepo.Create(ctx, c); err != nil {
		return models.Content{}, err
	}
	return c, nil
}

func (s *ContentService) List(ctx context.Context, userID int) ([]models.Content, error) {
	return s.contentRepo.ListByUser(ctx, userID)
}

// Delete removes an item owned by userID. Missing and foreign ids are
// indistinguishable: both yield ErrContentNotFound.
func (s *ContentService) Delete(ctx context.Context, userID int, contentID string) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return ErrContentNotFound
	}
	deleted, err := s.contentRepo.DeleteByIDAndUser(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContentNotFound
	}
	return nil
}
