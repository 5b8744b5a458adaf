package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	MailFrom   string
	AlertEmail string

	S3Bucket  string
	AWSRegion string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "portfolio"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:       getDurationEnv("TOKEN_TTL", 60, time.Minute),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", "http://localhost:5173"),

		SMTPHost:   getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:   getIntEnv("SMTP_PORT", 587),
		SMTPUser:   getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:   getEnvOrDefault("SMTP_PASS", ""),
		MailFrom:   getEnvOrDefault("MAIL_FROM", ""),
		AlertEmail: getEnvOrDefault("ALERT_EMAIL", ""),

		S3Bucket:  getEnvOrDefault("S3_BUCKET", ""),
		AWSRegion: getEnvOrDefault("AWS_REGION", "ap-south-1"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getListEnv(key, defaultValue string) []string {
	raw := getEnvOrDefault(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
