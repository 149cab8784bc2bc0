package games

import (
	"strings"

	"gorm.io/gorm"
)

// Texts holds the display text fields of a game for one language.
type Texts struct {
	Storyline *string
	Summary   *string
}

// Description joins storyline and summary with a blank line, or returns nil
// when neither is present.
func (t Texts) Description() *string {
	parts := []string{}
	if t.Storyline != nil {
		parts = append(parts, *t.Storyline)
	}
	if t.Summary != nil {
		parts = append(parts, *t.Summary)
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, "\n\n")
	return &joined
}

// LocalizedTexts resolves the storyline/summary pair for the requested
// language. A cached translation wins when it has any content; otherwise the
// source fields are used, falling back to the legacy description (assigned
// to summary) when both are empty.
func LocalizedTexts(db *gorm.DB, game *Game, lang string) Texts {
	if lang != "" && lang != "en" {
		var tr GameTranslation
		err := db.Where("game_id = ? AND lang = ?", game.ID, lang).First(&tr).Error
		if err == nil && (filled(tr.Storyline) || filled(tr.Summary)) {
			return Texts{
				Storyline: trimmed(tr.Storyline),
				Summary:   trimmed(tr.Summary),
			}
		}
	}

	if filled(game.Storyline) || filled(game.Summary) {
		return Texts{
			Storyline: trimmed(game.Storyline),
			Summary:   trimmed(game.Summary),
		}
	}

	return Texts{Summary: trimmed(game.Description)}
}

func filled(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func trimmed(s *string) *string {
	if !filled(s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
