// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package what3words is a client for the what3words API v3, which maps any
// point on Earth to a three-word address and back. Besides the remote
// operations it ships a pure, offline recognizer for three-word-address
// shaped text (IsPossible3wa, FindPossible3wa, DidYouMean).
package what3words

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"runtime"
	"time"

	whttp "github.com/wneessen/go-what3words/internal/http"
	"github.com/wneessen/go-what3words/internal/logger"
)

const (
	// DefaultBaseURL is the production endpoint of the what3words API.
	DefaultBaseURL = "https://api.what3words.com/v3"

	headerAPIKey  = "X-Api-Key"
	headerWrapper = "X-W3W-Wrapper"
)

// version is the version of the library (will be set at build time)
var version = "dev"

// Client talks to the what3words API. It is safe for concurrent use; all
// its fields are fixed after New returns.
type Client struct {
	apiKey     string
	host       string
	headers    map[string]string
	timeout    time.Duration
	logger     *logger.Logger
	httpClient *nethttp.Client
	http       *whttp.Client
}

// Option allows to customize a Client during New.
type Option func(*Client)

// WithHostname overrides the API endpoint, e.g. for the enterprise server
// or a test double.
func WithHostname(host string) Option {
	return func(c *Client) {
		c.host = host
	}
}

// WithHeader adds a custom header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to inject a
// custom transport, proxy or TLS configuration.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used by the client and its transport.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// New returns a Client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:  apiKey,
		host:    DefaultBaseURL,
		headers: make(map[string]string),
		timeout: whttp.DefaultTimeout,
		logger:  logger.New(slog.LevelError),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient != nil {
		client.http = whttp.NewWithClient(client.httpClient, client.logger)
	} else {
		client.http = whttp.New(client.logger)
	}
	return client
}

// ConvertTo3wa converts coordinates to the three-word address of the grid
// cell they fall into. The response shape follows the format set on opts.
func (c *Client) ConvertTo3wa(ctx context.Context, coords Coordinates, opts Options) (*GeocodeResult, error) {
	query := opts.Values()
	query.Set("coordinates", coords.queryValue())
	query.Set("format", opts.format.String())
	raw, err := c.get(ctx, "/convert-to-3wa", query)
	if err != nil {
		return nil, err
	}
	return decodeGeocodeResult(opts.format, raw)
}

// ConvertToCoordinates converts a three-word address to coordinates. The
// response shape follows the format set on opts.
func (c *Client) ConvertToCoordinates(ctx context.Context, words string, opts Options) (*GeocodeResult, error) {
	query := opts.Values()
	query.Set("words", words)
	query.Set("format", opts.format.String())
	raw, err := c.get(ctx, "/convert-to-coordinates", query)
	if err != nil {
		return nil, err
	}
	return decodeGeocodeResult(opts.format, raw)
}

// AvailableLanguages lists all languages and locales the API supports.
func (c *Client) AvailableLanguages(ctx context.Context) (*AvailableLanguages, error) {
	raw, err := c.get(ctx, "/available-languages", url.Values{})
	if err != nil {
		return nil, err
	}
	languages := new(AvailableLanguages)
	if err = json.Unmarshal(raw, languages); err != nil {
		return nil, &DecodeError{Format: FormatJSON, err: err}
	}
	return languages, nil
}

// GridSection returns the 3m x 3m grid lines within the given bounding box.
// The box must not span more than 4km from corner to corner.
func (c *Client) GridSection(ctx context.Context, box Square, format Format) (*GridSectionResult, error) {
	query := url.Values{}
	query.Set("bounding-box", box.queryValue())
	query.Set("format", format.String())
	raw, err := c.get(ctx, "/grid-section", query)
	if err != nil {
		return nil, err
	}
	return decodeGridSection(format, raw)
}

// Autosuggest returns three-word address suggestions for a full or partial
// input, ranked and filtered according to opts.
func (c *Client) Autosuggest(ctx context.Context, input string, opts Options) (*Autosuggest, error) {
	return c.autosuggest(ctx, "/autosuggest", input, opts)
}

// AutosuggestWithCoordinates behaves like Autosuggest but each suggestion
// additionally carries its coordinates and square.
func (c *Client) AutosuggestWithCoordinates(ctx context.Context, input string, opts Options) (*Autosuggest, error) {
	return c.autosuggest(ctx, "/autosuggest-with-coordinates", input, opts)
}

func (c *Client) autosuggest(ctx context.Context, path, input string, opts Options) (*Autosuggest, error) {
	query := opts.Values()
	query.Set("input", input)
	raw, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	result := new(Autosuggest)
	if err = json.Unmarshal(raw, result); err != nil {
		return nil, &DecodeError{Format: FormatJSON, err: err}
	}
	return result, nil
}

// AutosuggestSelection reports back to the API which suggestion the user
// picked for a given raw input. The API acknowledges with an empty body.
func (c *Client) AutosuggestSelection(ctx context.Context, rawInput string, selection Suggestion) error {
	query := url.Values{}
	query.Set("raw-input", rawInput)
	query.Set("selection", selection.Words)
	query.Set("rank", fmt.Sprintf("%d", selection.Rank))
	_, err := c.get(ctx, "/autosuggest-selection", query)
	return err
}

// IsValid3wa reports whether words is an existing three-word address. The
// offline IsPossible3wa check gates the remote call, so obviously malformed
// input never leaves the machine.
func (c *Client) IsValid3wa(ctx context.Context, words string) (bool, error) {
	if !IsPossible3wa(words) {
		return false, nil
	}
	result, err := c.Autosuggest(ctx, words, Options{}.NResults(1))
	if err != nil {
		return false, err
	}
	return len(result.Suggestions) > 0 && result.Suggestions[0].Words == words, nil
}

// get performs an authenticated GET against the API and returns the raw
// response body. Non-2xx responses are turned into an *APIError.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	headers := map[string]string{
		headerAPIKey:  c.apiKey,
		headerWrapper: fmt.Sprintf("what3words-go/%s (%s)", version, runtime.GOOS),
	}
	for key, value := range c.headers {
		headers[key] = value
	}

	status, body, err := c.http.GetWithTimeout(ctx, c.host+path, query, headers, c.timeout)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		apiResponse := new(errorResponse)
		if err = json.Unmarshal(body, apiResponse); err != nil || apiResponse.Error.Code == "" {
			return nil, &DecodeError{Format: FormatJSON,
				err: fmt.Errorf("unexpected HTTP status %d without error envelope", status)}
		}
		return nil, &APIError{
			StatusCode: status,
			Code:       apiResponse.Error.Code,
			Message:    apiResponse.Error.Message,
		}
	}
	return body, nil
}
