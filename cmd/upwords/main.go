package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/upwords-go/internal/cli"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	cli.Execute()
}
