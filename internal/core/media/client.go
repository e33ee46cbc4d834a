package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type httpStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPStore creates a media store client talking to the remote object
// store's HTTP API. baseURL is the store root (no trailing slash), apiKey
// authenticates every request.
func NewHTTPStore(baseURL, apiKey string) Store {
	return &httpStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			// Extended timeout: inline payloads can be several MB
			Timeout: 30 * time.Second,
		},
	}
}

// Upload stores an inline-encoded image payload on the media store
// Flow:
// 1. POST payload to {baseURL}/v1/upload
// 2. Parse {url, objectId} from the response
// Either both fields come back or nothing was stored - the store does not
// partially succeed.
func (s *httpStore) Upload(ctx context.Context, payload string) (*Upload, error) {
	if payload == "" {
		return nil, &StoreError{Op: "upload", Message: "payload cannot be empty"}
	}

	body, err := json.Marshal(map[string]string{"file": payload})
	if err != nil {
		return nil, &StoreError{Op: "upload", Message: "failed to encode payload", Err: err}
	}

	respBody, status, err := s.do(ctx, "/v1/upload", body)
	if err != nil {
		return nil, &StoreError{Op: "upload", Message: err.Error(), Err: err}
	}
	if status != http.StatusOK {
		return nil, &StoreError{Op: "upload", StatusCode: status, Message: preview(respBody)}
	}

	var result Upload
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &StoreError{Op: "upload", Message: "failed to parse store response", Err: err}
	}
	if result.URL == "" {
		return nil, &StoreError{Op: "upload", Message: "store response missing url"}
	}
	if result.ObjectID == "" {
		// Older store deployments only return the URL
		result.ObjectID = ObjectIDFromURL(result.URL)
	}

	return &result, nil
}

// Delete removes an object from the media store by its identifier.
// A "not found" result is success: the object is already gone, which is
// exactly the state the caller wants.
func (s *httpStore) Delete(ctx context.Context, objectID string) error {
	if objectID == "" {
		return &StoreError{Op: "delete", Message: "objectId cannot be empty"}
	}

	body, err := json.Marshal(map[string]string{"objectId": objectID})
	if err != nil {
		return &StoreError{Op: "delete", Message: "failed to encode request", Err: err}
	}

	respBody, status, err := s.do(ctx, "/v1/destroy", body)
	if err != nil {
		return &StoreError{Op: "delete", Message: err.Error(), Err: err}
	}
	if status == http.StatusNotFound {
		// Idempotent delete contract
		log.Printf("[MEDIA-DELETE] object %s already absent from store", objectID)
		return nil
	}
	if status != http.StatusOK {
		return &StoreError{Op: "delete", StatusCode: status, Message: preview(respBody)}
	}

	var result struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return &StoreError{Op: "delete", Message: "failed to parse store response", Err: err}
	}
	if result.Result != "ok" && result.Result != "not found" {
		return &StoreError{Op: "delete", Message: fmt.Sprintf("unexpected destroy result: %s", result.Result)}
	}

	return nil
}

func (s *httpStore) do(ctx context.Context, path string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("store request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close store response body: %v", closeErr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read store response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// preview truncates a response body for error messages so store errors
// never dump large payloads into logs
func preview(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		return s[:200] + "... (truncated)"
	}
	return s
}
