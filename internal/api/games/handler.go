package gamesapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamehub-app/database"
	"gamehub-app/internal/catalog"
	"gamehub-app/internal/domain/community"
	"gamehub-app/internal/domain/games"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pageSize = 9

var (
	catalogFetcher catalog.GameFetcher
	gameLocalizer  Localizer
)

// Setup injects the catalog client and localization pipeline used by the
// search-miss import path. Without them, searches stay local-only.
func Setup(fetcher catalog.GameFetcher, localizer Localizer) {
	catalogFetcher = fetcher
	gameLocalizer = localizer
}

// GET /games?search=&lang=&page=
func ListGames(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	term := strings.TrimSpace(c.Query("search"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	var message *string
	if term != "" && catalogFetcher != nil {
		var err error
		message, err = ResolveSearch(c.Request.Context(), database.DB, catalogFetcher, gameLocalizer, term)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import games", "details": err.Error()})
			return
		}
	}

	query := database.DB.Model(&games.Game{})
	if term != "" {
		query = searchFilter(query, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count games"})
		return
	}

	var rows []games.Game
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load games"})
		return
	}

	items := make([]GameListItem, 0, len(rows))
	for i := range rows {
		items = append(items, buildListItem(database.DB, &rows[i], lang))
	}

	lastPage := int(total+pageSize-1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	var searchQuery *string
	if term != "" {
		searchQuery = &term
	}

	c.JSON(http.StatusOK, ListResponse{
		Data:           items,
		Meta:           ListMeta{CurrentPage: page, LastPage: lastPage, TotalItems: total},
		ActiveLanguage: lang,
		SearchQuery:    searchQuery,
		SearchMessage:  message,
	})
}

// GET /games/:slug
func GetGameBySlug(c *gin.Context) {
	var game games.Game
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&game).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	lang := c.DefaultQuery("lang", "en")
	texts := games.LocalizedTexts(database.DB, &game, lang)
	userID := c.GetUint("user_id")

	comments, err := loadComments(database.DB, game.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}
	tips, err := loadTips(database.DB, game.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tips"})
		return
	}
	ratings, err := loadRatings(database.DB, game.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	c.JSON(http.StatusOK, GameDetail{
		ID:          game.ID,
		Title:       game.Title,
		Slug:        game.Slug,
		CoverURL:    game.CoverURL,
		Summary:     texts.Summary,
		Storyline:   texts.Storyline,
		Description: texts.Description(),
		Comments:    comments,
		Tips:        tips,
		Ratings:     ratings,
	})
}

func loadComments(db *gorm.DB, gameID, userID uint) ([]PostDTO, error) {
	var rows []community.Comment
	if err := community.Approved(db.Where("game_id = ?", gameID)).
		Preload("User").
		Preload("Reactions").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]PostDTO, 0, len(rows))
	for _, row := range rows {
		dto := PostDTO{
			ID:      row.ID,
			Content: row.Content,
			User:    buildAuthorDTO(row.User),
		}
		for _, r := range row.Reactions {
			switch r.Reaction {
			case community.ReactionLike:
				dto.LikesCount++
			case community.ReactionDislike:
				dto.DislikesCount++
			}
			if userID != 0 && r.UserID == userID {
				dto.UserReaction = reactionLabel(r.Reaction)
			}
		}
		out = append(out, dto)
	}
	return out, nil
}

func loadTips(db *gorm.DB, gameID, userID uint) ([]PostDTO, error) {
	var rows []community.Tip
	if err := community.Approved(db.Where("game_id = ?", gameID)).
		Preload("User").
		Preload("Reactions").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]PostDTO, 0, len(rows))
	for _, row := range rows {
		dto := PostDTO{
			ID:      row.ID,
			Content: row.Content,
			User:    buildAuthorDTO(row.User),
		}
		for _, r := range row.Reactions {
			switch r.Reaction {
			case community.ReactionLike:
				dto.LikesCount++
			case community.ReactionDislike:
				dto.DislikesCount++
			}
			if userID != 0 && r.UserID == userID {
				dto.UserReaction = reactionLabel(r.Reaction)
			}
		}
		out = append(out, dto)
	}
	return out, nil
}

func loadRatings(db *gorm.DB, gameID, userID uint) (RatingsDTO, error) {
	var dto RatingsDTO

	if err := db.Model(&games.GameRating{}).
		Where("game_id = ?", gameID).
		Count(&dto.Count).Error; err != nil {
		return dto, err
	}

	if dto.Count > 0 {
		var avg float64
		if err := db.Model(&games.GameRating{}).
			Where("game_id = ?", gameID).
			Select("AVG(rating)").
			Scan(&avg).Error; err != nil {
			return dto, err
		}
		dto.Average = &avg
	}

	if userID != 0 {
		var rating games.GameRating
		err := db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&rating).Error
		if err == nil {
			dto.User = &rating.Rating
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto, err
		}
	}
	return dto, nil
}

// POST /games/:slug/rating
func RateGame(c *gin.Context) {
	var input struct {
		Rating int `json:"rating" binding:"required,min=1,max=10"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be an integer between 1 and 10"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var game games.Game
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&game).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var rating games.GameRating
	err := database.DB.Where("game_id = ? AND user_id = ?", game.ID, userID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rating = games.GameRating{GameID: game.ID, UserID: userID, Rating: input.Rating}
		err = database.DB.Create(&rating).Error
	} else if err == nil {
		rating.Rating = input.Rating
		err = database.DB.Save(&rating).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating saved", "rating": rating.Rating})
}

// DELETE /games/:slug/rating
func DeleteRating(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var game games.Game
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&game).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	res := database.DB.Where("game_id = ? AND user_id = ?", game.ID, userID).Delete(&games.GameRating{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No rating to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating removed"})
}
