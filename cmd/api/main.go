package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/scorpaust/conex-blog/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables", nil)
	}

	if err := Serve(); err != nil {
		logger.Error("Server terminated", err)
		os.Exit(1)
	}
}
