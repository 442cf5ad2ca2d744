package main

import (
	"github.com/creatorpulse/creatorpulse/pkg/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development, missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
