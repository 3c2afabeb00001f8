package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

// JobAPI is the subset of the workbench API the orchestrator needs. The
// platform is treated as a black box: any non-success outcome is an error.
type JobAPI interface {
	CreateJob(ctx context.Context, projectId string, job *domain.CreateJobRequest) (*domain.Job, error)
	CreateJobRun(ctx context.Context, projectId string, jobId string) (*domain.JobRun, error)
	Ping(ctx context.Context) error
}

// WorkbenchClient talks to the workbench v2 REST API.
type WorkbenchClient struct {
	baseUrl    string
	apiKey     string
	projectId  string
	httpClient *http.Client
}

func NewWorkbenchClient(config *ApiConnectionDetails) *WorkbenchClient {
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &WorkbenchClient{
		baseUrl:    strings.TrimSuffix(config.WorkbenchUrl, "/"),
		apiKey:     config.ApiKey,
		projectId:  config.ProjectId,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *WorkbenchClient) CreateJob(ctx context.Context, projectId string, job *domain.CreateJobRequest) (*domain.Job, error) {
	created := &domain.Job{}
	url := fmt.Sprintf("%s/api/v2/projects/%s/jobs", c.baseUrl, projectId)
	if err := c.post(ctx, url, job, created); err != nil {
		return nil, errors.WithMessagef(err, "error creating job %q", job.Name)
	}
	return created, nil
}

func (c *WorkbenchClient) CreateJobRun(ctx context.Context, projectId string, jobId string) (*domain.JobRun, error) {
	run := &domain.JobRun{}
	url := fmt.Sprintf("%s/api/v2/projects/%s/jobs/%s/runs", c.baseUrl, projectId, jobId)
	if err := c.post(ctx, url, struct{}{}, run); err != nil {
		return nil, errors.WithMessagef(err, "error starting run for job %s", jobId)
	}
	return run, nil
}

// Ping checks that the configured project is reachable with the configured
// credentials. Unlike job submission it retries, since it runs once before the
// batch and a transient failure here would otherwise abort the whole run.
func (c *WorkbenchClient) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/v2/projects/%s", c.baseUrl, c.projectId)
	return retry.Do(
		func() error { return c.get(ctx, url) },
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
}

func (c *WorkbenchClient) post(ctx context.Context, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "error encoding request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *WorkbenchClient) get(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	return c.do(req, nil)
}

func (c *WorkbenchClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Errorf("%s %s returned %s: %s", req.Method, req.URL.Path, resp.Status, strings.TrimSpace(string(detail)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "error decoding response")
	}
	return nil
}
