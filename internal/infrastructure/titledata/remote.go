package titledata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// Remote fetches batches from the hosted backend's title-data endpoint.
type Remote struct {
	baseURL   string
	secretKey string
	namespace string
	httpc     *http.Client
}

// NewRemote builds a Remote client. An empty namespace falls back to
// DefaultNamespace; a non-positive timeout defaults to 30s.
func NewRemote(baseURL, secretKey, namespace string, timeout time.Duration) *Remote {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Remote{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		namespace: namespace,
		httpc:     &http.Client{Timeout: timeout},
	}
}

type getTitleDataRequest struct {
	Keys []string `json:"Keys"`
}

type getTitleDataResponse struct {
	Data struct {
		Data map[string]string `json:"Data"`
	} `json:"data"`
}

// Batch fetches one dataset batch. Keys absent from the store yield an empty
// slice and a nil error.
func (r *Remote) Batch(ctx context.Context, dataset domain.Dataset, n int) ([]domain.PuzzleRecord, error) {
	key := BatchKey(r.namespace, dataset, n)
	payload, err := json.Marshal(getTitleDataRequest{Keys: []string{key}})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/Server/GetTitleData", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.secretKey != "" {
		req.Header.Set("X-SecretKey", r.secretKey)
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("titledata %s %d: %s", key, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out getTitleDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("titledata %s: decode: %w", key, err)
	}
	raw, ok := out.Data.Data[key]
	if !ok || raw == "" {
		return nil, nil
	}
	// Batch values are JSON-encoded arrays stored as strings.
	var records []domain.PuzzleRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("titledata %s: batch payload: %w", key, err)
	}
	return records, nil
}
