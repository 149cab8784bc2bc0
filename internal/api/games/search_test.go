package gamesapi

import (
	"context"
	"errors"
	"testing"

	"gamehub-app/internal/catalog"
	"gamehub-app/internal/domain/games"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeFetcher struct {
	calls   int
	records []catalog.ExternalGame
	err     error
}

func (f *fakeFetcher) FetchGames(ctx context.Context, search string) ([]catalog.ExternalGame, error) {
	f.calls++
	return f.records, f.err
}

type fakeLocalizer struct {
	calls int
	err   error
}

func (f *fakeLocalizer) Localize(ctx context.Context, gameID uint, lang string) error {
	f.calls++
	return f.err
}

func searchTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&games.Game{}, &games.GameTranslation{}, &games.GameRating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func externalRecord(id int64, name, storyline, summary string) catalog.ExternalGame {
	rec := catalog.ExternalGame{ID: id, Name: name, Slug: games.MakeSlug(name)}
	rec.Storyline = storyline
	rec.Summary = summary
	return rec
}

func TestResolveSearchLocalMatchSkipsCatalog(t *testing.T) {
	db := searchTestDB(t)
	if err := db.Create(&games.Game{Title: "Chrono Trigger", Slug: "chrono-trigger"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	fetcher := &fakeFetcher{}
	msg, err := ResolveSearch(context.Background(), db, fetcher, &fakeLocalizer{}, "chrono")
	if err != nil {
		t.Fatalf("ResolveSearch: %v", err)
	}
	if msg != nil {
		t.Errorf("message = %q, want none", *msg)
	}
	if fetcher.calls != 0 {
		t.Errorf("catalog hit %d times despite a local match", fetcher.calls)
	}
}

func TestResolveSearchImportsOnMiss(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{records: []catalog.ExternalGame{
		externalRecord(1045, "Chrono Trigger", "A tale across eras.", "A classic RPG."),
	}}
	localizer := &fakeLocalizer{}

	msg, err := ResolveSearch(context.Background(), db, fetcher, localizer, "chrono trigger")
	if err != nil {
		t.Fatalf("ResolveSearch: %v", err)
	}
	if msg == nil || *msg != "1 game was imported from the external catalog." {
		t.Errorf("message = %v", msg)
	}

	var game games.Game
	if err := db.Where("slug = ?", "chrono-trigger").First(&game).Error; err != nil {
		t.Fatalf("imported game not found: %v", err)
	}
	if game.TwitchID == nil || *game.TwitchID != 1045 {
		t.Errorf("twitch id = %v", game.TwitchID)
	}
	if game.Description == nil || *game.Description != "A tale across eras." {
		t.Errorf("description should fall back to storyline, got %v", game.Description)
	}
	if localizer.calls != 1 {
		t.Errorf("localizer called %d times, want 1", localizer.calls)
	}
}

func TestResolveSearchPluralImportMessage(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{records: []catalog.ExternalGame{
		externalRecord(1, "Chrono Trigger", "", "One."),
		externalRecord(2, "Chrono Cross", "", "Two."),
	}}

	msg, err := ResolveSearch(context.Background(), db, fetcher, &fakeLocalizer{}, "chrono")
	if err != nil {
		t.Fatalf("ResolveSearch: %v", err)
	}
	if msg == nil || *msg != "2 games were imported from the external catalog." {
		t.Errorf("message = %v", msg)
	}
}

func TestResolveSearchCatalogFailureDegradesToMessage(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{err: errors.New("connect: connection refused")}

	msg, err := ResolveSearch(context.Background(), db, fetcher, &fakeLocalizer{}, "zelda")
	if err != nil {
		t.Fatalf("catalog failure must not propagate, got %v", err)
	}
	if msg == nil || *msg != "Could not reach the external catalog for this search." {
		t.Errorf("message = %v", msg)
	}
}

func TestResolveSearchLocalizeFailurePropagates(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{records: []catalog.ExternalGame{
		externalRecord(1, "Chrono Trigger", "Story.", ""),
	}}
	localizer := &fakeLocalizer{err: errors.New("provider quota exceeded")}

	if _, err := ResolveSearch(context.Background(), db, fetcher, localizer, "chrono"); err == nil {
		t.Error("localization failure during import should propagate")
	}
}

func TestResolveSearchNothingFound(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{}

	msg, err := ResolveSearch(context.Background(), db, fetcher, &fakeLocalizer{}, "vaporware 9000")
	if err != nil {
		t.Fatalf("ResolveSearch: %v", err)
	}
	if msg == nil || *msg != `No games were found for "vaporware 9000".` {
		t.Errorf("message = %v", msg)
	}
}

func TestResolveSearchSecondRunIsLocal(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{records: []catalog.ExternalGame{
		externalRecord(1, "Chrono Trigger", "", "Summary."),
	}}

	ctx := context.Background()
	if _, err := ResolveSearch(ctx, db, fetcher, &fakeLocalizer{}, "chrono"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	msg, err := ResolveSearch(ctx, db, fetcher, &fakeLocalizer{}, "chrono")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if msg != nil {
		t.Errorf("second run message = %q, want none", *msg)
	}
	if fetcher.calls != 1 {
		t.Errorf("catalog hit %d times across both runs, want 1", fetcher.calls)
	}

	var count int64
	db.Model(&games.Game{}).Where("slug = ?", "chrono-trigger").Count(&count)
	if count != 1 {
		t.Errorf("expected a single row for the slug, got %d", count)
	}
}

func TestResolveSearchSkipsLocalizerWithoutText(t *testing.T) {
	db := searchTestDB(t)
	fetcher := &fakeFetcher{records: []catalog.ExternalGame{
		externalRecord(1, "Mystery Title", "", ""),
	}}
	localizer := &fakeLocalizer{}

	if _, err := ResolveSearch(context.Background(), db, fetcher, localizer, "mystery"); err != nil {
		t.Fatalf("ResolveSearch: %v", err)
	}
	if localizer.calls != 0 {
		t.Errorf("localizer called %d times for a textless game", localizer.calls)
	}
}
