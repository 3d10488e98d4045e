package main

import (
	"github.com/baonguyen204/doc-summarizer-be/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	godotenv.Load()
}
