package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBType       string
	MongoURL     string
	MongoDB      string
	PostgresURL  string
	JWTSecret    string
	StorageType  string
	UploadDir    string
	ClientOrigin string

	// R2 settings, only read when StorageType is "r2"
	R2Bucket          string
	R2AccountID       string
	R2PublicURL       string
	R2AccessKeyID     string
	R2SecretAccessKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DBType:       os.Getenv("DB_TYPE"),
		MongoURL:     os.Getenv("MONGO_URL"),
		MongoDB:      os.Getenv("MONGO_DB"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		StorageType:  os.Getenv("STORAGE_TYPE"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
		ClientOrigin: os.Getenv("CLIENT_ORIGIN"),

		R2Bucket:          os.Getenv("R2_BUCKET"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2PublicURL:       os.Getenv("R2_PUBLIC_URL"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "staffhub"
	}
	if cfg.StorageType == "" {
		cfg.StorageType = "local"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "*"
	}
	return cfg
}
