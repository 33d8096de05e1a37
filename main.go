/*
Copyright © 2025 nextute
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/nextute/chatbot-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; deployed environments configure through real
	// environment variables.
	godotenv.Load()
}
