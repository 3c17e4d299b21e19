package router

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscope/uniscope-api/catalog"
	"github.com/uniscope/uniscope-api/handlers"
	chat_handlers "github.com/uniscope/uniscope-api/handlers/chat"
	university_handlers "github.com/uniscope/uniscope-api/handlers/university"
	"github.com/uniscope/uniscope-api/services"
	"github.com/uniscope/uniscope-api/utils/middleware"
)

// SetupRoutes mounts all HTTP routes. The search route must be
// registered before the slug route so "search" never resolves as a slug.
func SetupRoutes(app *fiber.App, store *catalog.Store, advisor *services.AdvisorService) {
	universityHandler := university_handlers.NewUniversityHandler(store)
	chatHandler := chat_handlers.NewChatHandler(advisor)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	// API group
	api := app.Group("/api")

	// University routes
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.ListUniversities)
	universities.Get("/search", universityHandler.SearchUniversities)
	universities.Get("/:slug", universityHandler.GetUniversity)

	// Chat route
	api.Post("/chat", chatHandler.Chat)
}
