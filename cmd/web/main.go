package main

import (
	"github.com/joho/godotenv"

	"kora_backend/internal/app"
	"kora_backend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	app.Run()
}
