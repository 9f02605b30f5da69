package config

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedCategory struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type Seed struct {
	Categories []SeedCategory `yaml:"categories"`
}

// LoadSeed parses the seed file at path, or the built-in seed when path is
// empty.
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = raw
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// Apply inserts the seed categories for an owner that has none yet and
// makes sure the owner's preferences row exists.
func (s *Seed) Apply(ctx context.Context, store *repository.Store, ownerID string) error {
	return store.Transaction(ctx, func(tx *repository.Store) error {
		count, err := tx.Categories().Count(ctx, ownerID)
		if err != nil {
			return err
		}

		if count == 0 {
			now := time.Now().UTC()
			for i, c := range s.Categories {
				color := c.Color
				if color == "" {
					color = model.DefaultCategoryColor
				}
				category := &model.Category{
					ID:        uuid.Must(uuid.NewV7()).String(),
					OwnerID:   ownerID,
					Name:      c.Name,
					Color:     color,
					CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
				}
				if err := tx.Categories().Create(ctx, category); err != nil {
					return err
				}
			}
			log.Printf("seeded %d categories for owner %s", len(s.Categories), ownerID)
		}

		_, err = tx.Preferences().FindOrCreate(ctx, ownerID)
		return err
	})
}
