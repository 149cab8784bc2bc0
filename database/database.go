package database

import (
	"fmt"
	"log"
	"os"

	"gamehub-app/internal/domain/billing"
	"gamehub-app/internal/domain/community"
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/domain/plans"
	"gamehub-app/internal/domain/privacy"
	"gamehub-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs AutoMigrate over every domain model. Tests call it against a
// throwaway database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// catalog
		&games.Game{},
		&games.GameTranslation{},
		&games.GameRating{},

		// community
		&community.Comment{},
		&community.CommentReaction{},
		&community.Tip{},
		&community.TipReaction{},
		&community.Announcement{},

		// privacy
		&privacy.DataErasureRequest{},
	)
}
