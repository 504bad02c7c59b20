package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppEnv        string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	JwtSecret     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JwtSecret:     os.Getenv("JWT_SECRET"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8000"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "belle-catalog"
	}
	if cfg.MongoURI == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
