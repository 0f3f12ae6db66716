package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ngodirectory/go-services/internal/ngo/handler"
	"github.com/ngodirectory/go-services/internal/ngo/repository"
	"github.com/ngodirectory/go-services/internal/ngo/service"
)

// ngod is a standalone demo server: the full directory API over the
// in-memory store, pre-seeded with the sample set. Useful for frontend
// development without a database file.
func main() {
	port := os.Getenv("NGO_SERVICE_PORT")
	if port == "" {
		port = "5010"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	svc := service.NewService(repository.NewMemoryRepo())
	if _, err := svc.SeedIfEmpty(context.Background()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	handler.RegisterRoutes(r, svc)

	log.Printf("ngod demo server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
