package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env and fails fast on missing required settings.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "SESSION_JWT_SECRET", "WEBHOOK_SIGNING_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}

func AppPort() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return port
	}
	return "8080"
}

func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

func SessionSecret() []byte { return []byte(os.Getenv("SESSION_JWT_SECRET")) }

func WebhookSecret() string { return os.Getenv("WEBHOOK_SIGNING_SECRET") }
