package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

const (
	shareCodeBytes      = 8
	shareEventTitle     = "Shared Calendar"
	defaultShareRetries = 5
)

var errShareCodeTaken = errors.New("share code already taken")

// TokenSource produces candidate share codes.
type TokenSource func() (string, error)

// RandomToken returns 8 random bytes as unpadded base64url.
func RandomToken() (string, error) {
	b := make([]byte, shareCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

type ShareService struct {
	store       *repository.Store
	tokens      TokenSource
	maxAttempts int
}

func NewShareService(store *repository.Store, maxAttempts int) *ShareService {
	if maxAttempts <= 0 {
		maxAttempts = defaultShareRetries
	}
	return &ShareService{
		store:       store,
		tokens:      RandomToken,
		maxAttempts: maxAttempts,
	}
}

// CreateShareEvent persists a new shared event and returns its code. A
// colliding code is replaced by a fresh one; only running out of attempts
// is reported to the caller.
func (s *ShareService) CreateShareEvent(ctx context.Context, ownerID string, now time.Time) (string, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.tokens()
		if err != nil {
			return "", err
		}

		err = s.insertShareEvent(ctx, ownerID, code, now)
		if err == nil {
			log.Printf("share code issued for owner %s", ownerID)
			return code, nil
		}

		if errors.Is(err, errShareCodeTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("share code collision on attempt %d, retrying", attempt)
			continue
		}

		return "", err
	}

	return "", apperrors.Conflict("could not allocate a unique share code after %d attempts", s.maxAttempts)
}

func (s *ShareService) insertShareEvent(ctx context.Context, ownerID, code string, now time.Time) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		taken, err := tx.Events().ShareCodeExists(ctx, code)
		if err != nil {
			return err
		}
		if taken {
			return errShareCodeTaken
		}

		return tx.Events().Create(ctx, &model.Event{
			ID:        uuid.Must(uuid.NewV7()).String(),
			OwnerID:   ownerID,
			Title:     shareEventTitle,
			StartAt:   dates.WallClock(now),
			ShareCode: &code,
		})
	})
}
