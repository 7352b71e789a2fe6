package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	RESTAddr    string `env:"REST_ADDR" envDefault:":8081"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	AIProvider  string `env:"AI_PROVIDER" envDefault:"pollinations"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel string `env:"OPENAI_MODEL"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("[ERR] Failed to parse environment: %v", err)
	}
	return cfg
}
