package games

import "time"

type Game struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	Slug     string `gorm:"not null;uniqueIndex:idx_games_slug"`
	TwitchID *int64 `gorm:"column:twitch_id;index"`
	CoverURL *string
	Summary  *string `gorm:"type:text"`
	// Storyline comes from the catalog as a separate field; Description is
	// the legacy free-text column kept as a fallback when both are absent.
	Storyline   *string `gorm:"type:text"`
	Description *string `gorm:"type:text"`

	Translations []GameTranslation `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GameTranslation caches the translated text fields of one game for one
// target language. SourceHash is the digest of the untranslated payload; a
// mismatch with the current source text is the only staleness signal.
type GameTranslation struct {
	ID         uint    `gorm:"primaryKey"`
	GameID     uint    `gorm:"not null;uniqueIndex:idx_game_translations_game_lang"`
	Lang       string  `gorm:"type:varchar(8);not null;uniqueIndex:idx_game_translations_game_lang"`
	Summary    *string `gorm:"type:text"`
	Storyline  *string `gorm:"type:text"`
	Provider   string
	SourceHash string `gorm:"column:source_hash"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type GameRating struct {
	ID        uint `gorm:"primaryKey"`
	GameID    uint `gorm:"not null;uniqueIndex:idx_game_ratings_game_user"`
	Game      Game `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_game_ratings_game_user"`
	Rating    int  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
