package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gita006/ResumeVision/internal/models"
)

type fakeIndexer struct {
	indexErr error
	indexed  []string
}

func (f *fakeIndexer) IndexJob(ctx context.Context, job *models.Job) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed = append(f.indexed, job.ID.String())
	return nil
}

func (f *fakeIndexer) RemoveJob(ctx context.Context, jobID string) error { return nil }

func jobApp(repo *stubJobRepo, indexer *fakeIndexer) *fiber.App {
	app := fiber.New()
	handler := NewJobHandler(repo, indexer)
	app.Post("/api/v1/jobs", handler.HandleCreateJob)
	return app
}

func postJob(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleCreateJob(t *testing.T) {
	repo := &stubJobRepo{}
	indexer := &fakeIndexer{}
	app := jobApp(repo, indexer)

	resp := postJob(t, app, `{"title":"Backend Engineer","description":"Build Go services."}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body models.CreateJobResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Backend Engineer", body.Title)
	assert.NotEmpty(t, body.ID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{body.ID}, indexer.indexed)
}

func TestHandleCreateJobMissingTitle(t *testing.T) {
	app := jobApp(&stubJobRepo{}, &fakeIndexer{})

	resp := postJob(t, app, `{"title":"  ","description":"Build Go services."}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreateJobMissingDescription(t *testing.T) {
	app := jobApp(&stubJobRepo{}, &fakeIndexer{})

	resp := postJob(t, app, `{"title":"Backend Engineer","description":""}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreateJobIndexFailureStillCreated(t *testing.T) {
	repo := &stubJobRepo{}
	indexer := &fakeIndexer{indexErr: fmt.Errorf("qdrant unavailable")}
	app := jobApp(repo, indexer)

	resp := postJob(t, app, `{"title":"Backend Engineer","description":"Build Go services."}`)
	defer resp.Body.Close()

	// Indexing is best effort: the job record still lands.
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, repo.created, 1)
}

func TestHandleCreateJobRepoFailure(t *testing.T) {
	repo := &stubJobRepo{createErr: fmt.Errorf("db down")}
	app := jobApp(repo, &fakeIndexer{})

	resp := postJob(t, app, `{"title":"Backend Engineer","description":"Build Go services."}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
