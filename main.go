package main

import (
	"time"

	"agency-cms/config"
	"agency-cms/database"
	routes "agency-cms/internal/app/http"
	"agency-cms/internal/content"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	store := content.NewGormStore(database.DB)
	resolver := content.NewResolver(store, config.CONTENT_CACHE_SIZE)
	themes := content.NewThemeResolver(store)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, resolver, themes)

	r.Run(":" + config.PORT)
}
