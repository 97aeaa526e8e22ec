package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/context7/upsert-action/internal/logger"
	"github.com/context7/upsert-action/internal/models"
)

const (
	// DefaultBaseURL is the production Context7 endpoint.
	DefaultBaseURL = "https://context7.com"

	addPath     = "/api/v1/add"
	refreshPath = "/refresh-library"

	defaultAddMessage     = "Library added successfully"
	defaultRefreshMessage = "Documentation refresh started successfully"
)

// Context7Service issues the add and refresh calls against the Context7 API.
// Every failure mode is folded into the returned Outcome; the methods never
// return an error.
type Context7Service struct {
	baseURL string
	client  *http.Client
}

// NewContext7Service creates a client against the production API with the
// given request timeout.
func NewContext7Service(timeoutSeconds int) *Context7Service {
	return NewContext7ServiceWithBaseURL(DefaultBaseURL, timeoutSeconds)
}

// NewContext7ServiceWithBaseURL creates a client against an arbitrary base
// URL. Used by tests to point at a local server.
func NewContext7ServiceWithBaseURL(baseURL string, timeoutSeconds int) *Context7Service {
	return &Context7Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// AddLibrary registers a repository as a new documentation source.
//
// A 400 response whose JSON message says the library already exists is
// treated as success: re-registering is idempotent from the caller's side.
func (s *Context7Service) AddLibrary(ctx context.Context, repoURL string) models.Outcome {
	logger.Infof("Adding library to Context7: %s", repoURL)
	logger.Info("This may take several minutes for large libraries...")

	resp, body, err := s.post(ctx, addPath, models.AddLibraryRequest{DocsRepoURL: repoURL})
	if err != nil {
		message := fmt.Sprintf("Request failed: %v", err)
		logger.ErrorAnnotated(message)
		return models.Outcome{Succeeded: false, StatusCode: 0, Message: message}
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		message := defaultAddMessage
		var parsed models.APIResponse
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
			message = parsed.Message
		}
		logger.Infof("Library added successfully: %s", message)
		return models.Outcome{Succeeded: true, StatusCode: resp.StatusCode, Message: message}

	case http.StatusBadRequest:
		var parsed models.APIResponse
		if err := json.Unmarshal(body, &parsed); err == nil {
			message := parsed.Message
			if message == "" {
				message = string(body)
			}
			if strings.Contains(strings.ToLower(message), "already exists") {
				logger.Notice(fmt.Sprintf("Library already exists: %s", message))
				return models.Outcome{Succeeded: true, StatusCode: resp.StatusCode, Message: message}
			}
			message = "Bad request: " + message
			logger.ErrorAnnotated(message)
			return models.Outcome{Succeeded: false, StatusCode: resp.StatusCode, Message: message}
		}
		// Undecodable body: no idempotency override, even if the raw text
		// mentions the library already existing.
		message := "Bad request: " + string(body)
		logger.ErrorAnnotated(message)
		return models.Outcome{Succeeded: false, StatusCode: resp.StatusCode, Message: message}

	default:
		message := fmt.Sprintf("API error (HTTP %d): %s", resp.StatusCode, string(body))
		logger.ErrorAnnotated(message)
		return models.Outcome{Succeeded: false, StatusCode: resp.StatusCode, Message: message}
	}
}

// RefreshLibrary requests a re-index of an already-registered library.
func (s *Context7Service) RefreshLibrary(ctx context.Context, libraryName string) models.Outcome {
	logger.Infof("Refreshing library documentation: %s", libraryName)
	logger.Info("This may take several minutes for large libraries...")

	resp, body, err := s.post(ctx, refreshPath, models.RefreshLibraryRequest{RequestedLibrary: libraryName})
	if err != nil {
		message := fmt.Sprintf("Request failed: %v", err)
		logger.ErrorAnnotated(message)
		return models.Outcome{Succeeded: false, StatusCode: 0, Message: message}
	}

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("API error (HTTP %d): %s", resp.StatusCode, string(body))
		logger.ErrorAnnotated(message)
		return models.Outcome{Succeeded: false, StatusCode: resp.StatusCode, Message: message}
	}

	message := defaultRefreshMessage
	status := "processing"
	var parsed models.APIResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			message = parsed.Message
		}
		if parsed.Status != "" {
			status = parsed.Status
		}
	}

	logger.Infof("Documentation refresh successful: %s", message)
	logger.Infof("Status: %s", status)

	return models.Outcome{Succeeded: true, StatusCode: resp.StatusCode, Message: message}
}

// post issues a JSON POST and reads the full response body. A non-nil error
// means the exchange never completed (connection, timeout, TLS, or a
// truncated body).
func (s *Context7Service) post(ctx context.Context, path string, payload interface{}) (*http.Response, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp, body, nil
}
