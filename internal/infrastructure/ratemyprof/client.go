// Package ratemyprof talks to the Rate My Professors GraphQL endpoint.
package ratemyprof

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const userAgent = "Mozilla/5.0"

// maxErrorBody bounds how much of a non-2xx body ends up in an error.
const maxErrorBody = 256

var ErrTeacherNotFound = errors.New("teacher not found")

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(graphqlURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		url:        graphqlURL,
		httpClient: httpClient,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   jsoniter.RawMessage `json:"data"`
	Errors []graphqlError      `json:"errors"`
}

// query posts one GraphQL operation and decodes its data member into dest.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, dest any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var envelope graphqlResponse

	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := lo.Map(envelope.Errors, func(e graphqlError, _ int) string { return e.Message })

		return fmt.Errorf("graphql: %s", strings.Join(messages, "; "))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.New("graphql: empty data")
	}

	if err = json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("json.Unmarshal(data): %w", err)
	}

	return nil
}
