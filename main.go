package main

import (
	"context"
	"log"
	"os"
	"time"

	"gamehub-app/config"
	"gamehub-app/database"
	gamesapi "gamehub-app/internal/api/games"
	routes "gamehub-app/internal/app/http"
	"gamehub-app/internal/catalog"
	"gamehub-app/internal/localize"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	creds, err := catalog.LoadCredentials(config.TWITCH_CREDENTIALS_FILE)
	if err != nil {
		log.Fatal("Failed to load catalog credentials:", err)
	}
	fetcher := catalog.NewClient(creds, catalog.NewMemoryCache())

	translator := localize.NewDeepLTranslator(config.DEEPL_API_KEY, config.DEEPL_API_URL)
	pipeline := localize.NewPipeline(database.DB, translator)
	dispatcher := localize.NewDispatcher(pipeline, localize.Mode(config.TRANSLATE_MODE), 64)
	dispatcher.Start(context.Background())
	defer dispatcher.Close()

	gamesapi.Setup(fetcher, dispatcher)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
