// Package shopify provides the Admin GraphQL client and the repository
// implementation backed by it.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"shopsetup/internal/core/apperror"
)

// Executor executes a GraphQL query against the Admin API and returns the
// parsed response body.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) (gjson.Result, error)
}

// ClientConfig holds Admin API client configuration.
type ClientConfig struct {
	// ShopDomain is the *.myshopify.com domain of the store.
	ShopDomain string

	// AccessToken is the Admin API access token.
	AccessToken string

	// APIVersion selects the Admin API version, e.g. "2024-10".
	APIVersion string

	// Timeout bounds each call. Zero means DefaultTimeout.
	Timeout time.Duration

	HTTPClient *http.Client
}

// DefaultTimeout is applied when ClientConfig.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// Client is an Admin GraphQL API client.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Admin API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.ShopDomain == "" {
		return nil, fmt.Errorf("ShopDomain is required")
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("AccessToken is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-10"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:   fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.ShopDomain, cfg.APIVersion),
		token:      cfg.AccessToken,
		httpClient: httpClient,
	}, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Execute posts a query to the Admin API and returns the parsed body.
// Top-level GraphQL errors are classified once here: a "does not exist" /
// "not found" query error becomes CodeTypeNotConfigured, everything else
// CodeUpstream. Callers branch on codes, never on error text.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (gjson.Result, error) {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return gjson.Result{}, apperror.NewInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, apperror.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return gjson.Result{}, apperror.NewTimeout("admin graphql", err)
		}
		return gjson.Result{}, apperror.NewUpstream("admin API request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, apperror.NewUpstream("failed to read admin API response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, apperror.NewUpstream(
			fmt.Sprintf("admin API returned status %d", resp.StatusCode), nil,
		).WithDetail("status", resp.StatusCode)
	}

	result := gjson.ParseBytes(body)
	if errs := result.Get("errors"); errs.Exists() && errs.IsArray() && len(errs.Array()) > 0 {
		return gjson.Result{}, classifyGraphQLErrors(errs)
	}

	return result, nil
}

// classifyGraphQLErrors maps top-level GraphQL errors to AppError codes.
// This is the only place upstream error text is inspected.
func classifyGraphQLErrors(errs gjson.Result) *apperror.AppError {
	first := errs.Array()[0].Get("message").String()

	for _, e := range errs.Array() {
		msg := e.Get("message").String()
		if strings.Contains(msg, "does not exist") || strings.Contains(msg, "not found") {
			return &apperror.AppError{
				Code:       apperror.CodeTypeNotConfigured,
				Message:    msg,
				HTTPStatus: http.StatusNotFound,
			}
		}
	}

	return apperror.NewUpstream(first, nil)
}
