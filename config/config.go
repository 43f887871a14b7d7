package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string

	UploadDir   string
	MaxUploadMB int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		DatabaseName: getEnv("DATABASE_NAME", "eduequi"),

		UploadDir:   getEnv("UPLOAD_DIR", "uploads/videos"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 500),
	}

	if AppConfig.MongoURI == "mongodb://localhost:27017/" {
		log.Println("Warning: Using default MONGO_URI. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
