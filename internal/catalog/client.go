package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
)

// HTTPClient fetches available questions from the content service.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Default().WithPrefix("catalog"),
	}
}

type questionsResp struct {
	Questions []models.Question `json:"questions"`
}

func (c *HTTPClient) FetchQuestions(ctx context.Context, categories []string) ([]models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")

	u := c.baseURL + "/api/questions"
	if len(categories) > 0 {
		params := url.Values{}
		for _, cat := range categories {
			params.Add("category", cat)
		}
		u += "?" + params.Encode()
	}

	log.Debug("fetching questions from: %s", u)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch questions: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("catalog response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("catalog request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("catalog status %d: %s", resp.StatusCode, string(body))
	}

	var out questionsResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode catalog response: %v", err)
		return nil, err
	}

	log.Debug("fetched %d questions", len(out.Questions))
	return out.Questions, nil
}
