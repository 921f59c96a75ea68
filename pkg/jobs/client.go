package jobs

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/season-link/profiles/pkg/apperror"
)

// Client checks job ids against the job service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// IsValid reports whether the job id exists. Any 2xx from the job service
// means the id is valid; any other status means it is not.
func (c *Client) IsValid(ctx context.Context, jobID uuid.UUID) (bool, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s", c.baseURL, jobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, apperror.Upstream("Job service is unreachable", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}
