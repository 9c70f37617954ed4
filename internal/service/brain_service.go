package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"second_brain/internal/logger"
	"second_brain/internal/models"
	"second_brain/internal/repository"
	"second_brain/pkg/utils"
)

const (
	defaultShareHashLength = 10
	maxShareAttempts       = 3
)

var errShareHashExhausted = errors.New("could not allocate a unique share hash")

type BrainService struct {
	linkRepo    repository.LinkRepo
	userRepo    repository.Authorization
	contentRepo repository.ContentRepo
	cache       ShareCache
	hashLength  int
	log         *logger.Logger // optional
}

func NewBrainService(
	linkRepo repository.LinkRepo,
	userRepo repository.Authorization,
	contentRepo repository.ContentRepo,
	cache ShareCache,
	hashLength int,
) *BrainService {
	if hashLength <= 0 {
		hashLength = defaultShareHashLength
	}
	return &BrainService{
		linkRepo:    linkRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		cache:       cache,
		hashLength:  hashLength,
	}
}

// Share returns the user's share hash, minting one on first use.
func (s *BrainService) Share(ctx context.Context, userID int) (string, error) {
	existing, err := s.linkRepo.GetByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Hash, nil
	}

	for attempt := 0; attempt < maxShareAttempts; attempt++ {
		hash, err := utils.RandomString(s.hashLength)
		if err != nil {
			return "", fmt.Errorf("generate share hash: %w", err)
		}
		created, err := s.linkRepo.CreateIfAbsent(ctx, userID, hash)
		if err != nil {
			return "", err
		}
		if created {
			return hash, nil
		}
		// Either a concurrent request created the user's link or the hash collided.
		existing, err = s.linkRepo.GetByUser(ctx, userID)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return existing.Hash, nil
		}
	}
	return "", errShareHashExhausted
}

// Unshare removes the user's share link. Calling it without a link is a no-op.
// The store row is authoritative; cache eviction is best effort.
func (s *BrainService) Unshare(ctx context.Context, userID int) error {
	existing, err := s.linkRepo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if err := s.linkRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	s.evict(ctx, existing.Hash)
	return nil
}

// Shared resolves a public hash to the owner's username and full collection.
func (s *BrainService) Shared(ctx context.Context, hash string) (models.SharedBrain, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return models.SharedBrain{}, ErrShareNotFound
	}

	ownerID, err := s.resolveOwner(ctx, hash)
	if err != nil {
		return models.SharedBrain{}, err
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return models.SharedBrain{}, err
	}
	if owner == nil {
		s.evict(ctx, hash)
		return models.SharedBrain{}, ErrShareNotFound
	}

	content, err := s.contentRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return models.SharedBrain{}, err
	}
	return models.SharedBrain{Username: owner.Username, Content: content}, nil
}

// resolveOwner consults the cache first; cache failures fall back to the store.
// A cache hit is only trusted while the owner's share_links row still carries hash.
func (s *BrainService) resolveOwner(ctx context.Context, hash string) (int, error) {
	if s.cache != nil {
		ownerID, ok, err := s.cache.GetOwner(ctx, hash)
		if err == nil && ok {
			link, err := s.linkRepo.GetByUser(ctx, ownerID)
			if err != nil {
				return 0, err
			}
			if link != nil && link.Hash == hash {
				return ownerID, nil
			}
			// revoked or rotated since it was cached
			s.evict(ctx, hash)
			return 0, ErrShareNotFound
		}
	}

	link, err := s.linkRepo.GetByHash(ctx, hash)
	if err != nil {
		return 0, err
	}
	if link == nil {
		return 0, ErrShareNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetOwner(ctx, hash, link.UserID); err != nil && s.log != nil {
			s.log.Warnw("share_cache_set_failed", "err", err)
		}
	}
	return link.UserID, nil
}

// evict drops hash from the cache. Failures are logged, never returned:
// a stale entry is rejected by resolveOwner.
func (s *BrainService) evict(ctx context.Context, hash string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, hash); err != nil && s.log != nil {
		s.log.Warnw("share_cache_evict_failed", "err", err)
	}
}
