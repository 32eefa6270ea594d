package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNoAPIKey means the upstream credential is not configured.
var ErrNoAPIKey = errors.New("RAPIDAPI_KEY is not configured")

// ErrUpstreamTimeout marks a bounded-timeout expiry on the upstream call;
// callers may retry.
var ErrUpstreamTimeout = errors.New("job search upstream timed out")

// UpstreamError carries the upstream status and body verbatim so the
// handler can pass them through in the error envelope.
type UpstreamError struct {
	Status  int
	Details any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("job search upstream http %d", e.Status)
}

// UpstreamJob mirrors the subset of the JSearch record we reshape.
type UpstreamJob struct {
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerWebsite   string   `json:"employer_website"`
	JobCity           string   `json:"job_city"`
	JobDescription    string   `json:"job_description"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
}

type searchResponse struct {
	Data []UpstreamJob `json:"data"`
}

// Client is a minimal JSearch (RapidAPI) search client.
type Client struct {
	APIKey  string
	BaseURL string
	httpDo  *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://jsearch.p.rapidapi.com"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search performs one upstream query. A non-2xx response becomes an
// *UpstreamError with the decoded (or raw) body attached.
func (c *Client) Search(ctx context.Context, params url.Values) ([]UpstreamJob, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	endpoint := fmt.Sprintf("%s/search?%s", c.BaseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-RapidAPI-Key", c.APIKey)
	httpReq.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, ErrUpstreamTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var details any
		if err := json.Unmarshal(body, &details); err != nil {
			details = string(body)
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Details: details}
	}
	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
