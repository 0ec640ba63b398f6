package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	ServerPort     string
	DataFile       string
	MigrationsPath string
	CORSOrigins    string
	SeedDemoData   bool
	LogDevelopment bool

	RemindersEnabled      bool
	ReminderCheckInterval time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "reviewdash_user"),
		DBPassword:     getEnv("DB_PASSWORD", "reviewdash_pass"),
		DBName:         getEnv("DB_NAME", "reviewdash_db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DataFile:       getEnv("DATA_FILE", "dashboard.json"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		SeedDemoData:   getEnvBool("SEED_DEMO_DATA", true),
		LogDevelopment: getEnvBool("LOG_DEVELOPMENT", true),

		RemindersEnabled:      getEnvBool("REMINDERS_ENABLED", true),
		ReminderCheckInterval: getEnvDuration("REMINDER_CHECK_INTERVAL", time.Hour),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultVal
}
