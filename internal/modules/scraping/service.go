package scraping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrNotConfigured = errors.New("scraping webhook URL is not configured")
	// ErrUpstream wraps any workflow failure: non-2xx status, transport
	// error or timeout. Callers map it to 502.
	ErrUpstream = errors.New("scraping workflow failed")
)

// TriggerResult is the upstream workflow's answer.
type TriggerResult struct {
	Success  bool   `json:"success"`
	SheetURL string `json:"sheetUrl"`
}

// Service proxies trigger requests to the external scraping workflow.
// Purely a pass-through with no local state; attempt-once, no retries.
type Service struct {
	webhookURL string
	client     *http.Client
	log        zerolog.Logger
}

func NewService(webhookURL string, timeout time.Duration, log zerolog.Logger) *Service {
	return &Service{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Trigger forwards city/keyword plus the caller's email and relays the
// sheet URL the workflow produced.
func (s *Service) Trigger(ctx context.Context, city, keyword, userEmail string) (*TriggerResult, error) {
	if s.webhookURL == "" {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(s.webhookURL)
	if err != nil {
		return nil, ErrNotConfigured
	}
	q := u.Query()
	q.Set("city", city)
	q.Set("keyword", keyword)
	q.Set("userEmail", userEmail)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("city", city).Str("keyword", keyword).Msg("triggering scraping workflow")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.log.Warn().Int("status", resp.StatusCode).Bytes("body", body).Msg("scraping workflow error")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var result TriggerResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &result, nil
}
