package localize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gamehub-app/internal/domain/games"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeTranslator struct {
	calls int
	fail  bool
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	f.calls++
	if f.fail {
		return "", errors.New("provider down")
	}
	return "[" + targetLang + "] " + text, nil
}

func (f *fakeTranslator) Name() string { return "fake" }

func testDB(t *testing.T) *gorm.DB {
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
	// a second pool connection would see a fresh empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&games.Game{}, &games.GameTranslation{}, &games.GameRating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedGame(t *testing.T, db *gorm.DB, storyline, summary string) *games.Game {
	t.Helper()
	game := &games.Game{Title: "Chrono Trigger", Slug: "chrono-trigger"}
	if storyline != "" {
		game.Storyline = &storyline
	}
	if summary != "" {
		game.Summary = &summary
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return game
}

func TestLocalizeCreatesTranslation(t *testing.T) {
	db := testDB(t)
	game := seedGame(t, db, "A story about time travel.", "A classic RPG.")
	translator := &fakeTranslator{}
	pipeline := NewPipeline(db, translator)

	if err := pipeline.Localize(context.Background(), game.ID, "fr"); err != nil {
		t.Fatalf("Localize: %v", err)
	}

	var row games.GameTranslation
	if err := db.Where("game_id = ? AND lang = ?", game.ID, "fr").First(&row).Error; err != nil {
		t.Fatalf("translation row not created: %v", err)
	}
	if row.Storyline == nil || *row.Storyline != "[fr] A story about time travel." {
		t.Errorf("storyline = %v", row.Storyline)
	}
	if row.Summary == nil || *row.Summary != "[fr] A classic RPG." {
		t.Errorf("summary = %v", row.Summary)
	}
	if row.Provider != "fake" {
		t.Errorf("provider = %q", row.Provider)
	}
	if row.SourceHash == "" {
		t.Error("source hash not recorded")
	}
}

func TestLocalizeSkipsWhenHashMatches(t *testing.T) {
	db := testDB(t)
	game := seedGame(t, db, "Story.", "Summary.")
	translator := &fakeTranslator{}
	pipeline := NewPipeline(db, translator)

	ctx := context.Background()
	if err := pipeline.Localize(ctx, game.ID, "fr"); err != nil {
		t.Fatalf("first Localize: %v", err)
	}
	firstCalls := translator.calls

	if err := pipeline.Localize(ctx, game.ID, "fr"); err != nil {
		t.Fatalf("second Localize: %v", err)
	}
	if translator.calls != firstCalls {
		t.Errorf("provider called %d more times for unchanged source", translator.calls-firstCalls)
	}
}

func TestLocalizeRetranslatesWhenSourceChanges(t *testing.T) {
	db := testDB(t)
	game := seedGame(t, db, "Story.", "Summary.")
	translator := &fakeTranslator{}
	pipeline := NewPipeline(db, translator)

	ctx := context.Background()
	if err := pipeline.Localize(ctx, game.ID, "fr"); err != nil {
		t.Fatalf("first Localize: %v", err)
	}

	updated := "A rewritten summary."
	if err := db.Model(game).Update("summary", &updated).Error; err != nil {
		t.Fatalf("update summary: %v", err)
	}

	before := translator.calls
	if err := pipeline.Localize(ctx, game.ID, "fr"); err != nil {
		t.Fatalf("second Localize: %v", err)
	}
	if translator.calls == before {
		t.Error("expected a fresh provider call after the source changed")
	}

	var rows []games.GameTranslation
	if err := db.Where("game_id = ?", game.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load translations: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected the cached row to be updated in place, got %d rows", len(rows))
	}
	if rows[0].Summary == nil || !strings.Contains(*rows[0].Summary, "rewritten") {
		t.Errorf("summary not refreshed: %v", rows[0].Summary)
	}
}

func TestLocalizeNoopWithoutTranslatableText(t *testing.T) {
	db := testDB(t)
	game := seedGame(t, db, "", "")
	translator := &fakeTranslator{}
	pipeline := NewPipeline(db, translator)

	if err := pipeline.Localize(context.Background(), game.ID, "fr"); err != nil {
		t.Fatalf("Localize: %v", err)
	}
	if translator.calls != 0 {
		t.Errorf("provider called %d times for a game without text", translator.calls)
	}

	var count int64
	db.Model(&games.GameTranslation{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no translation rows, got %d", count)
	}
}

func TestLocalizeFallsBackToDescription(t *testing.T) {
	db := testDB(t)
	game := &games.Game{Title: "Old Import", Slug: "old-import"}
	desc := "Legacy description text."
	game.Description = &desc
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}

	pipeline := NewPipeline(db, &fakeTranslator{})
	if err := pipeline.Localize(context.Background(), game.ID, "fr"); err != nil {
		t.Fatalf("Localize: %v", err)
	}

	var row games.GameTranslation
	if err := db.Where("game_id = ?", game.ID).First(&row).Error; err != nil {
		t.Fatalf("translation row not created: %v", err)
	}
	if row.Summary == nil || *row.Summary != "[fr] Legacy description text." {
		t.Errorf("summary = %v, want translated description", row.Summary)
	}
	if row.Storyline != nil {
		t.Errorf("storyline should be empty, got %v", row.Storyline)
	}
}

func TestLocalizeProviderFailureCommitsNothing(t *testing.T) {
	db := testDB(t)
	game := seedGame(t, db, "Story.", "Summary.")
	pipeline := NewPipeline(db, &fakeTranslator{fail: true})

	if err := pipeline.Localize(context.Background(), game.ID, "fr"); err == nil {
		t.Fatal("expected provider error to propagate")
	}

	var count int64
	db.Model(&games.GameTranslation{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows after failure, got %d", count)
	}
}

func TestLocalizeUnknownGame(t *testing.T) {
	db := testDB(t)
	pipeline := NewPipeline(db, &fakeTranslator{})

	err := pipeline.Localize(context.Background(), 9999, "fr")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want ErrGameNotFound", err)
	}
}

func TestLocalizeLongFieldRejoinsChunks(t *testing.T) {
	db := testDB(t)
	paraCount := 3
	paras := make([]string, 0, paraCount)
	for i := 0; i < paraCount; i++ {
		paras = append(paras, strings.Repeat(fmt.Sprintf("s%d ", i), ChunkLimit/4))
	}
	game := seedGame(t, db, strings.Join(paras, "\n\n"), "")

	translator := &fakeTranslator{}
	pipeline := NewPipeline(db, translator)
	if err := pipeline.Localize(context.Background(), game.ID, "fr"); err != nil {
		t.Fatalf("Localize: %v", err)
	}

	if translator.calls < 2 {
		t.Errorf("expected multiple chunked provider calls, got %d", translator.calls)
	}

	var row games.GameTranslation
	if err := db.Where("game_id = ?", game.ID).First(&row).Error; err != nil {
		t.Fatalf("translation row not created: %v", err)
	}
	if row.Storyline == nil || strings.Count(*row.Storyline, "[fr]") != translator.calls {
		t.Error("translated chunks were not all joined into the stored field")
	}
}
