package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads environment variables from .env unless GO_ENV says the
// process runs in a managed environment that injects them directly.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV          string
	PORT            int
	ALLOWED_ORIGINS string
	// OpenAI Configuration
	OPENAI_API_KEY  string
	OPENAI_MODEL    string
	OPENAI_BASE_URL string
	// Redis Configuration
	REDIS_URL string
	// Catalog Configuration
	UNIVERSITY_DATA_FILE string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-5"
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:          os.Getenv("GO_ENV"),
		PORT:            port,
		ALLOWED_ORIGINS: allowedOrigins,
		// OpenAI
		OPENAI_API_KEY:  os.Getenv("OPENAI_API_KEY"),
		OPENAI_MODEL:    model,
		OPENAI_BASE_URL: os.Getenv("OPENAI_BASE_URL"),
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Catalog
		UNIVERSITY_DATA_FILE: os.Getenv("UNIVERSITY_DATA_FILE"),
	}

	return envVariables, nil
}
