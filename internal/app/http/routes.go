package routes

import (
	assetsapi "agency-cms/internal/api/assets"
	authapi "agency-cms/internal/api/auth"
	pagesapi "agency-cms/internal/api/pages"
	publicapi "agency-cms/internal/api/public"
	settingsapi "agency-cms/internal/api/settings"
	"agency-cms/internal/app/http/middleware"
	"agency-cms/internal/content"
	"agency-cms/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, resolver *content.Resolver, themes *content.ThemeResolver) {
	publicHandler := publicapi.NewHandler(resolver, themes, authapi.SendContactEmail)
	pagesHandler := pagesapi.NewHandler(resolver)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public read surface. No auth, no sanitizing (read-only), and by design
	// no 5xx from /cms/public/theme: failures degrade to defaults.
	r.GET("/cms/public/pages/:slug", publicHandler.GetPage)
	r.GET("/cms/public/content/:slug", publicHandler.GetContent)
	r.GET("/cms/public/theme", publicHandler.GetTheme)
	r.GET("/cms/public/settings", settingsapi.GetPublicSettings)

	// Public write surface gets input sanitizing
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/cms/public/contact", publicHandler.SubmitContact)
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated editors
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", authapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/cms/admin/pages", pagesHandler.ListPages)
	auth.GET("/cms/admin/pages/:id", pagesHandler.GetPage)
	auth.POST("/cms/admin/pages", pagesHandler.CreatePage)
	auth.PUT("/cms/admin/pages/:id", pagesHandler.UpdatePage)
	auth.DELETE("/cms/admin/pages/:id", pagesHandler.DeletePage)

	auth.POST("/cms/admin/pages/:id/publish", pagesHandler.PublishPage)
	auth.POST("/cms/admin/pages/:id/unpublish", pagesHandler.UnpublishPage)

	auth.GET("/cms/admin/assets", assetsapi.ListAssets)
	auth.POST("/cms/admin/assets", assetsapi.UploadAsset)
	auth.DELETE("/cms/admin/assets/:id", assetsapi.DeleteAsset)

	// Admin-only settings writes
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/cms/admin/settings", settingsapi.ListSettings)
	admin.PUT("/cms/admin/settings", settingsapi.UpsertSetting)
	admin.PUT("/cms/admin/settings/theme", settingsapi.UpdateTheme)
}
