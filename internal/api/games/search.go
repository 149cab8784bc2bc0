package gamesapi

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gamehub-app/internal/catalog"
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/localize"

	"gorm.io/gorm"
)

// Localizer runs the localization pipeline for one game.
type Localizer interface {
	Localize(ctx context.Context, gameID uint, lang string) error
}

// searchFilter narrows a games query to rows whose title contains the term
// (case-insensitive) or whose slug contains the slugified term.
func searchFilter(db *gorm.DB, term string) *gorm.DB {
	like := "%" + strings.ToLower(term) + "%"
	if slug := games.MakeSlug(term); slug != "" {
		return db.Where("LOWER(title) LIKE ? OR slug LIKE ?", like, "%"+slug+"%")
	}
	return db.Where("LOWER(title) LIKE ?", like)
}

func hasLocalMatches(db *gorm.DB, term string) (bool, error) {
	var count int64
	err := searchFilter(db.Model(&games.Game{}), term).Count(&count).Error
	return count > 0, err
}

// ResolveSearch self-heals a local search miss by importing matching games
// from the external catalog, at most one import round-trip per call. It
// returns the user-facing status message, or nil when the local filter
// already had rows. A catalog failure is downgraded to a message; a
// localization failure during import propagates.
func ResolveSearch(ctx context.Context, db *gorm.DB, fetcher catalog.GameFetcher, localizer Localizer, term string) (*string, error) {
	found, err := hasLocalMatches(db, term)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, nil
	}

	records, fetchErr := fetcher.FetchGames(ctx, term)
	if fetchErr != nil {
		log.Printf("catalog search %q failed: %v", term, fetchErr)
		msg := "Could not reach the external catalog for this search."
		return &msg, nil
	}

	imported, err := importRecords(ctx, db, localizer, records)
	if err != nil {
		return nil, err
	}

	found, err = hasLocalMatches(db, term)
	if err != nil {
		return nil, err
	}
	if found {
		if imported > 0 {
			msg := importedMessage(imported)
			return &msg, nil
		}
		return nil, nil
	}
	msg := fmt.Sprintf("No games were found for %q.", term)
	return &msg, nil
}

// importRecords upserts each named record by slug and localizes games that
// carry any translatable text. The localize call is synchronous and its
// error is not caught here.
func importRecords(ctx context.Context, db *gorm.DB, localizer Localizer, records []catalog.ExternalGame) (int, error) {
	imported := 0
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}

		game, err := upsertGame(db, rec)
		if err != nil {
			return imported, err
		}

		if localizer != nil && hasTranslatableText(game) {
			if err := localizer.Localize(ctx, game.ID, localize.DefaultLang); err != nil {
				return imported, err
			}
		}
		imported++
	}
	return imported, nil
}

func upsertGame(db *gorm.DB, rec catalog.ExternalGame) (*games.Game, error) {
	slug := games.MakeSlug(rec.Name)

	fields := games.Game{
		Title:       rec.Name,
		Slug:        slug,
		TwitchID:    &rec.ID,
		CoverURL:    optional(rec.Cover.URL),
		Summary:     optional(rec.Summary),
		Storyline:   optional(rec.Storyline),
		Description: firstOptional(rec.Storyline, rec.Summary),
	}

	var game games.Game
	err := db.Where("slug = ?", slug).First(&game).Error
	if err == gorm.ErrRecordNotFound {
		game = fields
		if err := db.Create(&game).Error; err != nil {
			return nil, err
		}
		return &game, nil
	}
	if err != nil {
		return nil, err
	}

	fields.ID = game.ID
	fields.CreatedAt = game.CreatedAt
	game = fields
	if err := db.Save(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func hasTranslatableText(game *games.Game) bool {
	for _, s := range []*string{game.Summary, game.Storyline, game.Description} {
		if s != nil && strings.TrimSpace(*s) != "" {
			return true
		}
	}
	return false
}

func importedMessage(n int) string {
	if n == 1 {
		return "1 game was imported from the external catalog."
	}
	return fmt.Sprintf("%d games were imported from the external catalog.", n)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func firstOptional(values ...string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}
