// Package llm calls the remote model-serving endpoint that drafts the
// excuse emails.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	requestTimeout = 30 * time.Second
	maxTokens      = 1000
	temperature    = 0.7
)

// ErrMissingToken is returned when no API token is configured. It is
// checked per call so the server can boot without one.
var ErrMissingToken = errors.New("serving endpoint API token is not configured")

// Client is a client for a chat-style model-serving endpoint.
type Client struct {
	endpointURL string
	token       string
	httpClient  *http.Client
}

// Config holds configuration for the serving-endpoint client.
type Config struct {
	EndpointURL string
	Token       string
}

// New creates a serving-endpoint client with a fixed 30-second request
// timeout.
func New(config Config) *Client {
	return &Client{
		endpointURL: config.EndpointURL,
		token:       config.Token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// message is a single turn in the chat payload.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// servingRequest is the request body sent to the endpoint.
type servingRequest struct {
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// Complete sends the prompt as a single user message and returns the raw
// model reply text. Connection failures, timeouts and non-2xx responses
// come back as errors; the reply text itself is never interpreted here
// beyond extracting it from the endpoint's envelope.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.token == "" {
		return "", ErrMissingToken
	}

	body, err := json.Marshal(servingRequest{
		Messages:    []message{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("serving endpoint error (status %d): %s", resp.StatusCode, string(respBody))
	}

	reply, err := decodeReply(respBody)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return reply, nil
}

// decodeReply extracts the model text from the endpoint's envelope.
// Depending on the deployed model the endpoint answers in one of a small
// set of shapes: a chat choices array, a predictions array, or a bare
// content field. Anything else is handed over whole so the normalizer
// can still work with it.
func decodeReply(raw []byte) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if rawChoices, ok := doc["choices"]; ok {
		var choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		}
		if err := json.Unmarshal(rawChoices, &choices); err == nil && len(choices) > 0 {
			return choices[0].Message.Content, nil
		}
	}

	if rawPredictions, ok := doc["predictions"]; ok {
		var predictions []string
		if err := json.Unmarshal(rawPredictions, &predictions); err == nil && len(predictions) > 0 {
			return predictions[0], nil
		}
	}

	if rawContent, ok := doc["content"]; ok {
		var content string
		if err := json.Unmarshal(rawContent, &content); err == nil {
			return content, nil
		}
	}

	return string(raw), nil
}
