package services

import (
	"context"
	"fmt"
	"log"

	"github.com/gita006/ResumeVision/internal/models"
)

// Chunking parameters for job-description ingestion.
const (
	jobChunkSize    = 1000
	jobChunkOverlap = 200
)

// JobIndexerService chunks, embeds, and indexes a job description so the
// matching step can retrieve relevant requirement passages.
type JobIndexerService interface {
	IndexJob(ctx context.Context, job *models.Job) error
	RemoveJob(ctx context.Context, jobID string) error
}

type jobIndexerService struct {
	geminiService GeminiService
	qdrantService QdrantService
	chunker       TextChunker
}

func NewJobIndexerService(
	geminiService GeminiService,
	qdrantService QdrantService,
) JobIndexerService {
	return &jobIndexerService{
		geminiService: geminiService,
		qdrantService: qdrantService,
		chunker:       NewTextChunker(),
	}
}

// IndexJob implements JobIndexerService.
func (s *jobIndexerService) IndexJob(ctx context.Context, job *models.Job) error {
	text := fmt.Sprintf("%s\n\n%s", job.Title, job.Description)
	chunks := s.chunker.ChunkText(text, jobChunkSize, jobChunkOverlap)

	log.Printf("✂️  Job %s split into %d chunks", job.ID, len(chunks))

	stored := 0
	for i, chunk := range chunks {
		embedding, err := s.geminiService.GenerateEmbedding(ctx, chunk)
		if err != nil {
			log.Printf("⚠️  Failed to embed chunk %d: %v", i+1, err)
			continue
		}

		if err := s.qdrantService.UpsertChunk(ctx, job.ID.String(), chunk, embedding); err != nil {
			log.Printf("⚠️  Failed to store chunk %d: %v", i+1, err)
			continue
		}
		stored++
	}

	if stored == 0 && len(chunks) > 0 {
		return fmt.Errorf("failed to index job %s: no chunks stored", job.ID)
	}

	log.Printf("✅ Indexed %d/%d chunks for job %s", stored, len(chunks), job.ID)
	return nil
}

// RemoveJob implements JobIndexerService.
func (s *jobIndexerService) RemoveJob(ctx context.Context, jobID string) error {
	return s.qdrantService.DeleteJob(ctx, jobID)
}
