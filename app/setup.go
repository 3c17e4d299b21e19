package app

import (
	"fmt"
	"time"

	"github.com/uniscope/uniscope-api/api"
	"github.com/uniscope/uniscope-api/catalog"
	"github.com/uniscope/uniscope-api/config"
	"github.com/uniscope/uniscope-api/router"
	"github.com/uniscope/uniscope-api/services"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Load the university catalog. A bad snapshot fails startup; the
	// server never runs with a partial catalog.
	store, err := catalog.Load(getEnv.UNIVERSITY_DATA_FILE)
	if err != nil {
		print("Failed to load the university catalog\n")
		print("Check UNIVERSITY_DATA_FILE if a custom snapshot is configured\n")
		return err
	}

	// Initialize the AI advisor service. A missing key disables the
	// advisor but does not stop the server.
	advisor := services.NewAdvisorService(services.AdvisorConfig{
		APIKey:  getEnv.OPENAI_API_KEY,
		BaseURL: getEnv.OPENAI_BASE_URL,
		Model:   getEnv.OPENAI_MODEL,
		Timeout: 60 * time.Second,
	})

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (middleware is attached inside)
	router.SetupRoutes(app, store, advisor)

	// Get the PORT & Start the Server
	return server.Run()
}
