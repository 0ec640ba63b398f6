package main

import (
	"log"

	_ "reviewdash/docs"
	"reviewdash/internal/config"
	"reviewdash/internal/server"
)

// @title           Review Dashboard API
// @version         1.0
// @description     API for tracking review assignments, the document review calendar and reminder logs.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
