package gamesapi

import (
	"time"

	"gamehub-app/internal/domain/community"
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/domain/users"

	"gorm.io/gorm"
)

type GameListItem struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	CoverURL    *string `json:"cover_url"`
	Summary     *string `json:"summary"`
	Storyline   *string `json:"storyline"`
	Description *string `json:"description"`
}

type ListMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	TotalItems  int64 `json:"total_items"`
}

type ListResponse struct {
	Data           []GameListItem `json:"data"`
	Meta           ListMeta       `json:"meta"`
	ActiveLanguage string         `json:"active_language"`
	SearchQuery    *string        `json:"search_query"`
	SearchMessage  *string        `json:"search_message"`
}

type AuthorDTO struct {
	Username           string  `json:"username"`
	DisplayNameColor   *string `json:"display_name_color"`
	DisplayAlias       *string `json:"display_alias"`
	ProfileBorderStyle *string `json:"profile_border_style"`
	IsSubscribed       bool    `json:"is_subscribed"`
}

type PostDTO struct {
	ID            uint      `json:"id"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likes_count"`
	DislikesCount int       `json:"dislikes_count"`
	UserReaction  *string   `json:"user_reaction"`
	User          AuthorDTO `json:"user"`
}

type RatingsDTO struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
	User    *int     `json:"user"`
}

type GameDetail struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CoverURL    *string    `json:"cover_url"`
	Summary     *string    `json:"summary"`
	Storyline   *string    `json:"storyline"`
	Description *string    `json:"description"`
	Comments    []PostDTO  `json:"comments"`
	Tips        []PostDTO  `json:"tips"`
	Ratings     RatingsDTO `json:"ratings"`
}

func buildListItem(db *gorm.DB, game *games.Game, lang string) GameListItem {
	texts := games.LocalizedTexts(db, game, lang)
	return GameListItem{
		ID:          game.ID,
		Title:       game.Title,
		Slug:        game.Slug,
		CoverURL:    game.CoverURL,
		Summary:     texts.Summary,
		Storyline:   texts.Storyline,
		Description: texts.Description(),
	}
}

func buildAuthorDTO(u users.User) AuthorDTO {
	return AuthorDTO{
		Username:           u.Username,
		DisplayNameColor:   u.DisplayNameColor,
		DisplayAlias:       u.DisplayAlias,
		ProfileBorderStyle: u.ProfileBorderStyle,
		IsSubscribed:       u.IsSubscribed(time.Now()),
	}
}

func reactionLabel(reaction int) *string {
	var label string
	switch reaction {
	case community.ReactionLike:
		label = "like"
	case community.ReactionDislike:
		label = "dislike"
	default:
		return nil
	}
	return &label
}
