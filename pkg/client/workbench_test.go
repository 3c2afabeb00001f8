package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

func newTestClient(url string) *WorkbenchClient {
	return NewWorkbenchClient(&ApiConnectionDetails{
		WorkbenchUrl:   url,
		ApiKey:         "test-key",
		ProjectId:      "project-1",
		RequestTimeout: 2 * time.Second,
	})
}

func TestCreateJob(t *testing.T) {
	var gotPath, gotAuth, gotRequestId string
	var gotBody domain.CreateJobRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRequestId = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Job{ID: "job-42", Name: gotBody.Name})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	created, err := client.CreateJob(context.Background(), "project-1", &domain.CreateJobRequest{
		Name:   "Train model",
		Script: "train.py",
		Kernel: "python3",
		CPU:    2,
		Memory: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "job-42", created.ID)
	assert.Equal(t, "/api/v2/projects/project-1/jobs", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.NotEmpty(t, gotRequestId)
	assert.Equal(t, "Train model", gotBody.Name)
	assert.Equal(t, float64(2), gotBody.CPU)
}

func TestCreateJob_ErrorIncludesStatusAndDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"script not found"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateJob(context.Background(), "project-1", &domain.CreateJobRequest{Name: "bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "script not found")
	assert.Contains(t, err.Error(), "bad")
}

func TestCreateJobRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/projects/project-1/jobs/job-42/runs", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(domain.JobRun{ID: "run-1", JobID: "job-42"})
	}))
	defer server.Close()

	run, err := newTestClient(server.URL).CreateJobRun(context.Background(), "project-1", "job-42")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "job-42", run.JobID)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/projects/project-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	assert.NoError(t, newTestClient(server.URL).Ping(context.Background()))
}

func TestPing_RetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	assert.NoError(t, newTestClient(server.URL).Ping(context.Background()))
	assert.Equal(t, 3, attempts)
}

func TestPing_GivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	err := newTestClient(server.URL).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
