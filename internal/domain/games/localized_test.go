package games

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Game{}, &GameTranslation{}, &GameRating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Chrono Trigger", "chrono-trigger"},
		{"  Final Fantasy VII  ", "final-fantasy-vii"},
		{"Baldur's Gate 3", "baldurs-gate-3"},
		{"NieR:Automata", "nierautomata"},
		{"A  --  B", "a-b"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MakeSlug(tc.title); got != tc.want {
			t.Errorf("MakeSlug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestLocalizedTextsPrefersTranslation(t *testing.T) {
	db := testDB(t)
	game := &Game{
		Title:     "Chrono Trigger",
		Slug:      "chrono-trigger",
		Storyline: strPtr("English storyline."),
		Summary:   strPtr("English summary."),
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&GameTranslation{
		GameID:    game.ID,
		Lang:      "fr",
		Storyline: strPtr("Histoire."),
		Summary:   strPtr("Résumé."),
	}).Error; err != nil {
		t.Fatalf("seed translation: %v", err)
	}

	texts := LocalizedTexts(db, game, "fr")
	if texts.Storyline == nil || *texts.Storyline != "Histoire." {
		t.Errorf("storyline = %v", texts.Storyline)
	}
	if texts.Summary == nil || *texts.Summary != "Résumé." {
		t.Errorf("summary = %v", texts.Summary)
	}
}

func TestLocalizedTextsFallsBackToSource(t *testing.T) {
	db := testDB(t)
	game := &Game{
		Title:   "Chrono Trigger",
		Slug:    "chrono-trigger",
		Summary: strPtr("English summary."),
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// requested language has no cached row
	texts := LocalizedTexts(db, game, "fr")
	if texts.Summary == nil || *texts.Summary != "English summary." {
		t.Errorf("summary = %v, want source text", texts.Summary)
	}
}

func TestLocalizedTextsIgnoresEmptyTranslation(t *testing.T) {
	db := testDB(t)
	game := &Game{
		Title:   "Chrono Trigger",
		Slug:    "chrono-trigger",
		Summary: strPtr("English summary."),
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&GameTranslation{
		GameID:  game.ID,
		Lang:    "fr",
		Summary: strPtr("   "),
	}).Error; err != nil {
		t.Fatalf("seed translation: %v", err)
	}

	texts := LocalizedTexts(db, game, "fr")
	if texts.Summary == nil || *texts.Summary != "English summary." {
		t.Errorf("blank translation should not win, got %v", texts.Summary)
	}
}

func TestLocalizedTextsEnglishSkipsLookup(t *testing.T) {
	db := testDB(t)
	game := &Game{
		Title:     "Chrono Trigger",
		Slug:      "chrono-trigger",
		Storyline: strPtr("English storyline."),
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&GameTranslation{
		GameID:    game.ID,
		Lang:      "fr",
		Storyline: strPtr("Histoire."),
	}).Error; err != nil {
		t.Fatalf("seed translation: %v", err)
	}

	texts := LocalizedTexts(db, game, "en")
	if texts.Storyline == nil || *texts.Storyline != "English storyline." {
		t.Errorf("storyline = %v, want source text for en", texts.Storyline)
	}
}

func TestLocalizedTextsLegacyDescription(t *testing.T) {
	db := testDB(t)
	game := &Game{
		Title:       "Old Import",
		Slug:        "old-import",
		Description: strPtr("Legacy description."),
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	texts := LocalizedTexts(db, game, "fr")
	if texts.Storyline != nil {
		t.Errorf("storyline = %v, want nil", texts.Storyline)
	}
	if texts.Summary == nil || *texts.Summary != "Legacy description." {
		t.Errorf("summary = %v, want legacy description", texts.Summary)
	}
}

func TestTextsDescription(t *testing.T) {
	both := Texts{Storyline: strPtr("Story."), Summary: strPtr("Summary.")}
	if got := both.Description(); got == nil || *got != "Story.\n\nSummary." {
		t.Errorf("Description() = %v", got)
	}

	if got := (Texts{}).Description(); got != nil {
		t.Errorf("empty Texts should have nil description, got %q", *got)
	}
}
