package internal

import "os"

type Config struct {
	Token       string
	StoragePath string
	Environment string
}

func LoadConfig() Config {
	return Config{
		Token:       os.Getenv("RELAY_BOT_TOKEN"),
		StoragePath: os.Getenv("RELAY_STORAGE_PATH"),
		Environment: os.Getenv("RELAY_ENVIRONMENT"),
	}
}
