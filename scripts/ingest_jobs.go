package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gita006/ResumeVision/internal/config"
	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
	"github.com/gita006/ResumeVision/internal/services"
)

// Bulk-ingests job descriptions from text files: each argument becomes one
// job record whose title is the file name. Run as:
//
//	go run ./scripts jobs/backend_engineer.txt jobs/data_analyst.txt
func main() {
	log.Println("🚀 Starting job description ingestion...")

	if len(os.Args) < 2 {
		log.Fatal("❌ Usage: ingest_jobs <job_description.txt> [...]")
	}

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	jobRepo := repositories.NewJobRepository(db)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Worker.RetryInitialDelay)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	indexer := services.NewJobIndexerService(geminiService, qdrantService)
	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, path := range os.Args[1:] {
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		title = strings.ReplaceAll(title, "_", " ")

		log.Printf("\n📄 Processing: %s", title)
		log.Printf("   Path: %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		description := strings.TrimSpace(string(data))
		if description == "" {
			log.Printf("   ⚠️  File is empty, skipping...")
			failCount++
			continue
		}

		job := &models.Job{
			ID:          uuid.New(),
			Title:       title,
			Description: description,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := jobRepo.Create(job); err != nil {
			log.Printf("   ❌ Failed to create job record: %v", err)
			failCount++
			continue
		}

		if err := indexer.IndexJob(ctx, job); err != nil {
			log.Printf("   ❌ Failed to index job: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Successfully ingested %s (%s)", title, job.ID)
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d jobs", successCount)
	log.Printf("   ❌ Failed: %d jobs", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}

	log.Println("✅ All job descriptions ingested successfully!")
}
