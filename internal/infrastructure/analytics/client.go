// Package analytics is the HTTP client for the external model-performance
// service. Payloads are parsed and validated here into typed domain values;
// nothing downstream trusts ad-hoc field presence.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/difficulty"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// ErrBadPayload indicates a response that decoded but is structurally
// unusable (missing id, no puzzle array).
var ErrBadPayload = errors.New("analytics: malformed response payload")

// Client calls the analytics API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a Client for baseURL. A non-positive timeout defaults to 30s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// wire types

type perfPayload struct {
	AvgAccuracy       float64 `json:"avgAccuracy"`
	AvgConfidence     float64 `json:"avgConfidence"`
	TotalExplanations int     `json:"totalExplanations"`
	WrongCount        int     `json:"wrongCount"`
	TotalFeedback     int     `json:"totalFeedback"`
	NegativeFeedback  int     `json:"negativeFeedback"`
	CompositeScore    float64 `json:"compositeScore"`
}

type taskPayload struct {
	ID          string       `json:"id"`
	Performance *perfPayload `json:"performanceData"`
}

type worstPayload struct {
	Puzzles []taskPayload `json:"puzzles"`
}

func (p *perfPayload) toDomain() *domain.PerformanceData {
	return &domain.PerformanceData{
		AvgAccuracy:       difficulty.Clamp(p.AvgAccuracy),
		AvgConfidence:     p.AvgConfidence,
		TotalExplanations: p.TotalExplanations,
		WrongCount:        p.WrongCount,
		TotalFeedback:     p.TotalFeedback,
		NegativeFeedback:  p.NegativeFeedback,
		CompositeScore:    p.CompositeScore,
	}
}

// TaskPerformance fetches performance metadata for one bare id. A 404 means
// the service holds no record and yields (nil, nil).
func (c *Client) TaskPerformance(ctx context.Context, bareID string) (*domain.PerformanceData, error) {
	u := c.baseURL + "/puzzle/task/" + url.PathEscape(bareID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("analytics task %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var task taskPayload
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if task.Performance == nil {
		return nil, nil
	}
	return task.Performance.toDomain(), nil
}

// WorstPerforming lists the puzzles AI models struggle with most, in the
// service's sort order.
func (c *Client) WorstPerforming(ctx context.Context, limit int, sortBy string) ([]domain.PuzzleRecord, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if sortBy != "" {
		q.Set("sortBy", sortBy)
	}
	u := c.baseURL + "/puzzle/worst-performing"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("analytics worst-performing %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var payload worstPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	out := make([]domain.PuzzleRecord, 0, len(payload.Puzzles))
	for _, p := range payload.Puzzles {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: puzzle entry missing id", ErrBadPayload)
		}
		rec := domain.PuzzleRecord{ID: p.ID}
		if p.Performance != nil {
			rec.Performance = p.Performance.toDomain()
		}
		out = append(out, rec)
	}
	return out, nil
}
