// Command seed loads the starter catalog into an empty database.
// It is a no-op when any category already exists.
package main

import (
	"os"
	"time"

	"duka/internal/config"
	"duka/internal/infra"
	"duka/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var starterCatalog = map[string][]string{
	"Books":       {"A4", "A5", "Exercise Books", "Text Books", "Novels"},
	"Stationary":  {"Pens", "Pencils", "Markers", "Notebooks", "Rulers", "Erasers"},
	"Flours":      {"Self Raising", "All Purpose", "Maize Flour", "Cassava Flour"},
	"Cooking Oil": {"1L", "2L", "5L", "Sunflower", "Vegetable"},
	"Detergents":  {"Laundry Powder", "Liquid Dishwash", "Bar Soap", "Toilet Cleaner"},
	"Beverages":   {"Sodas", "Juices", "Water", "Energy Drinks"},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("categories already exist, skipping seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for name, subs := range starterCatalog {
			cat := model.Category{Name: name}
			if err := tx.Create(&cat).Error; err != nil {
				return err
			}
			log.Info().Str("category", name).Msg("seeded category")

			for _, sub := range subs {
				if err := tx.Create(&model.Subcategory{CategoryID: cat.ID, Name: sub}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
