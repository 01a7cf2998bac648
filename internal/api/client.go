// Package api implements the generic REST client every resource
// service is a thin binding of. Requests carry the bearer token from
// the session store; non-2xx responses become StatusError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nkiryanov/cookbook/internal/apperrors"
	"github.com/nkiryanov/cookbook/internal/logger"
	"github.com/nkiryanov/cookbook/internal/models"
	"github.com/nkiryanov/cookbook/internal/session"
)

// Config is shared by every resource client built from it.
type Config struct {
	Endpoint string
	Sessions *session.Store

	// HTTPClient defaults to a plain http.Client
	HTTPClient *http.Client

	// Headers are extra headers sent with every request. The
	// Authorization header is applied after them and always wins.
	Headers http.Header

	Logger logger.Logger
}

// Client is a typed client for one resource path segment. Whether it
// supports writes is decided at construction, there is no runtime
// capability probing.
type Client[T models.TransferObject] struct {
	endpoint string
	resource string
	sessions *session.Store
	client   *http.Client
	headers  http.Header
	logger   logger.Logger
	writable bool
}

// NewReadOnly creates a client with only get/list/delete operations.
func NewReadOnly[T models.TransferObject](resource string, cfg Config) *Client[T] {
	return newClient[T](resource, cfg, false)
}

// NewReadWrite creates a client that additionally creates and updates.
func NewReadWrite[T models.TransferObject](resource string, cfg Config) *Client[T] {
	return newClient[T](resource, cfg, true)
}

func newClient[T models.TransferObject](resource string, cfg Config, writable bool) *Client[T] {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Client[T]{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		resource: resource,
		sessions: cfg.Sessions,
		client:   httpClient,
		headers:  cfg.Headers,
		logger:   log.With("resource", resource),
		writable: writable,
	}
}

// Resource returns the server path segment this client is bound to.
func (c *Client[T]) Resource() string { return c.resource }

// SupportsWrite reports whether create and update are available.
func (c *Client[T]) SupportsWrite() bool { return c.writable }

// Get fetches a single item by id.
func (c *Client[T]) Get(ctx context.Context, itemID string) (T, error) {
	var item T
	resp, err := c.request(ctx, http.MethodGet, c.resource+"/"+url.PathEscape(itemID), nil, "")
	if err != nil {
		return item, err
	}
	return item, c.decode(resp, &item)
}

// One fetches a singleton resource (settings) from the bare path.
func (c *Client[T]) One(ctx context.Context) (T, error) {
	var item T
	resp, err := c.request(ctx, http.MethodGet, c.resource, nil, "")
	if err != nil {
		return item, err
	}
	return item, c.decode(resp, &item)
}

// List fetches one page. Only set params are serialized, in the fixed
// order limit, nextToken, status, sortOrder.
func (c *Client[T]) List(ctx context.Context, params models.Params) (models.Results[T], error) {
	var results models.Results[T]

	var pairs []string
	if params.Limit > 0 {
		pairs = append(pairs, "limit="+strconv.Itoa(params.Limit))
	}
	if params.NextToken != "" {
		pairs = append(pairs, "nextToken="+url.QueryEscape(params.NextToken))
	}
	if params.Status != "" {
		pairs = append(pairs, "status="+url.QueryEscape(params.Status))
	}
	if params.SortOrder != "" {
		pairs = append(pairs, "sortOrder="+url.QueryEscape(params.SortOrder))
	}

	path := c.resource
	if len(pairs) > 0 {
		path += "?" + strings.Join(pairs, "&")
	}

	resp, err := c.request(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return results, err
	}
	return results, c.decode(resp, &results)
}

// Delete removes an item and returns its id.
func (c *Client[T]) Delete(ctx context.Context, itemID string) (string, error) {
	resp, err := c.request(ctx, http.MethodDelete, c.resource+"/"+url.PathEscape(itemID), nil, "")
	if err != nil {
		return "", err
	}
	c.discard(resp)
	return itemID, nil
}

// Create posts a new item from a partial update body.
func (c *Client[T]) Create(ctx context.Context, update any) (T, error) {
	return c.write(ctx, http.MethodPost, c.resource, update)
}

// Update puts a partial update to an existing item.
func (c *Client[T]) Update(ctx context.Context, itemID string, update any) (T, error) {
	return c.write(ctx, http.MethodPut, c.resource+"/"+url.PathEscape(itemID), update)
}

func (c *Client[T]) write(ctx context.Context, method string, path string, update any) (T, error) {
	var item T
	if !c.writable {
		return item, apperrors.ErrReadOnlyResource
	}

	if err := models.Validate(update); err != nil {
		return item, err
	}

	body, err := json.Marshal(update)
	if err != nil {
		return item, fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := c.request(ctx, method, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return item, err
	}
	return item, c.decode(resp, &item)
}

func (c *Client[T]) request(ctx context.Context, method string, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+"/"+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Applied last: extra headers must never override the auth header
	req.Header.Set("Authorization", "Bearer "+c.sessions.AccessToken())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Request failed", "method", method, "path", path, "status_code", resp.StatusCode)
		c.discard(resp)
		return nil, &StatusError{Status: resp.StatusCode}
	}

	return resp, nil
}

func (c *Client[T]) decode(resp *http.Response, out any) error {
	defer resp.Body.Close() // nolint:errcheck

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to decode response", "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client[T]) discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
