package localize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gamehub-app/internal/domain/games"

	"gorm.io/gorm"
)

// ChunkLimit is the per-request character budget sent to the provider.
const ChunkLimit = 4000

// DefaultLang is the single target language of the app today.
const DefaultLang = "fr"

var ErrGameNotFound = errors.New("game not found")

// Pipeline keeps the cached translation of a game's text fields in sync with
// the source text. Translation work happens at most once per content version:
// the digest of the source payload is compared against the stored one before
// any provider call.
type Pipeline struct {
	DB         *gorm.DB
	Translator Translator
}

func NewPipeline(db *gorm.DB, translator Translator) *Pipeline {
	return &Pipeline{DB: db, Translator: translator}
}

type sourcePayload struct {
	Storyline string `json:"storyline,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

func (p sourcePayload) empty() bool {
	return p.Storyline == "" && p.Summary == ""
}

func (p sourcePayload) digest() string {
	raw, _ := json.Marshal(p)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Localize translates the game's storyline and summary into lang and upserts
// the cached row. It is a no-op when the game has nothing to translate or the
// cached digest matches the current source text. Any provider failure aborts
// the whole call; nothing is committed until every chunk of every field
// succeeded.
func (p *Pipeline) Localize(ctx context.Context, gameID uint, lang string) error {
	var game games.Game
	if err := p.DB.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrGameNotFound, gameID)
		}
		return err
	}

	src := sourceOf(&game)
	if src.empty() {
		return nil
	}
	hash := src.digest()

	var existing games.GameTranslation
	err := p.DB.Where("game_id = ? AND lang = ?", game.ID, lang).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if found && existing.SourceHash == hash {
		return nil
	}

	storyline, err := p.translateField(ctx, src.Storyline, lang)
	if err != nil {
		return err
	}
	summary, err := p.translateField(ctx, src.Summary, lang)
	if err != nil {
		return err
	}

	if found {
		existing.Storyline = storyline
		existing.Summary = summary
		existing.Provider = p.Translator.Name()
		existing.SourceHash = hash
		return p.DB.Save(&existing).Error
	}
	return p.DB.Create(&games.GameTranslation{
		GameID:     game.ID,
		Lang:       lang,
		Storyline:  storyline,
		Summary:    summary,
		Provider:   p.Translator.Name(),
		SourceHash: hash,
	}).Error
}

// sourceOf extracts the translatable payload: trimmed storyline and summary,
// with the legacy description standing in as summary when both are empty.
func sourceOf(game *games.Game) sourcePayload {
	src := sourcePayload{
		Storyline: trimPtr(game.Storyline),
		Summary:   trimPtr(game.Summary),
	}
	if src.empty() {
		src.Summary = trimPtr(game.Description)
	}
	return src
}

// translateField chunks one field, translates every chunk and rejoins them
// with a line break. An empty field translates to nil.
func (p *Pipeline) translateField(ctx context.Context, text, lang string) (*string, error) {
	if text == "" {
		return nil, nil
	}
	chunks := Chunk(text, ChunkLimit)
	translated := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		out, err := p.Translator.Translate(ctx, chunk, lang, "en")
		if err != nil {
			return nil, err
		}
		translated = append(translated, out)
	}
	joined := strings.Join(translated, "\n")
	return &joined, nil
}

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
