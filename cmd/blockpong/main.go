package main

import (
	"log"

	"blockpong/internal/config"
	"blockpong/internal/desktop"
)

func main() {
	cfg := config.Load()
	log.Printf("blockpong starting (seed %d, %dx%d)", cfg.Seed, cfg.WindowWidth, cfg.WindowHeight)

	if err := desktop.Run(cfg); err != nil {
		log.Fatalf("blockpong: %v", err)
	}
}
