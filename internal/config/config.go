package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	SeedPath    string
	OpenAPIPath string
}

// Load builds the config from the environment with fixed defaults. A .env
// file is picked up when present. With an empty environment the defaults
// reproduce the documented interface: port 3000, seed at data/seed.json.
func Load() Config {
	_ = godotenv.Load()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seed.json"
	}

	openAPIPath := os.Getenv("OPENAPI_PATH")
	if openAPIPath == "" {
		openAPIPath = "docs/openapi.yaml"
	}

	return Config{
		Addr:        addr,
		SeedPath:    seedPath,
		OpenAPIPath: openAPIPath,
	}
}
