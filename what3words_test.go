// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/wneessen/go-what3words/internal/testhelper"
)

const (
	testAPIKey = "TEST_API_KEY"
	testHost   = "https://w3w.example.com/v3"
)

func testClient(t *testing.T, rtFn func(req *stdhttp.Request) (*stdhttp.Response, error)) *Client {
	t.Helper()
	return New(testAPIKey, WithHostname(testHost),
		WithHTTPClient(&stdhttp.Client{Transport: testhelper.MockRoundTripper{Fn: rtFn}}))
}

func fileResponse(t *testing.T, status int, name string) func(req *stdhttp.Request) (*stdhttp.Response, error) {
	t.Helper()
	return func(req *stdhttp.Request) (*stdhttp.Response, error) {
		data, err := os.Open(name)
		if err != nil {
			t.Fatalf("failed to open JSON response file: %s", err)
		}
		return &stdhttp.Response{
			StatusCode: status,
			Body:       data,
			Header:     make(stdhttp.Header),
		}, nil
	}
}

func TestNew(t *testing.T) {
	t.Run("new client uses the production endpoint", func(t *testing.T) {
		client := New(testAPIKey)
		if client.host != DefaultBaseURL {
			t.Errorf("expected host to be %s, got %s", DefaultBaseURL, client.host)
		}
	})
	t.Run("options override hostname, headers and timeout", func(t *testing.T) {
		client := New(testAPIKey,
			WithHostname(testHost),
			WithHeader("X-Custom-Header", "custom-value"),
			WithTimeout(time.Second*3),
		)
		if client.host != testHost {
			t.Errorf("expected host to be %s, got %s", testHost, client.host)
		}
		if client.headers["X-Custom-Header"] != "custom-value" {
			t.Error("expected custom header to be set")
		}
		if client.timeout != time.Second*3 {
			t.Errorf("expected timeout to be 3s, got %s", client.timeout)
		}
	})
	t.Run("custom HTTP client carries the requests", func(t *testing.T) {
		var called bool
		custom := &stdhttp.Client{
			Transport: testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
				called = true
				return &stdhttp.Response{
					StatusCode: 200,
					Body:       io.NopCloser(strings.NewReader(`{"languages":[{"code":"en"}]}`)),
					Header:     make(stdhttp.Header),
				}, nil
			}},
		}
		client := New(testAPIKey, WithHostname(testHost), WithHTTPClient(custom))
		if _, err := client.AvailableLanguages(context.Background()); err != nil {
			t.Fatalf("failed to list languages: %s", err)
		}
		if !called {
			t.Error("expected the custom HTTP client to carry the request")
		}
	})
}

func TestClient_ConvertTo3wa(t *testing.T) {
	t.Run("conversion to a plain address succeeds", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileResponse(t, 200, "testdata/convert_json.json")(req)
		})
		result, err := client.ConvertTo3wa(context.Background(), Coordinates{Lat: 51.521251, Lng: -0.203586}, Options{})
		if err != nil {
			t.Fatalf("failed to convert coordinates: %s", err)
		}
		if result.Address == nil {
			t.Fatal("expected a plain address result")
		}
		if result.Address.Words != "filled.count.soap" {
			t.Errorf("expected words to be filled.count.soap, got %s", result.Address.Words)
		}

		if gotReq.URL.Path != "/v3/convert-to-3wa" {
			t.Errorf("unexpected request path: %s", gotReq.URL.Path)
		}
		query := gotReq.URL.Query()
		if query.Get("coordinates") != "51.521251,-0.203586" {
			t.Errorf("unexpected coordinates parameter: %s", query.Get("coordinates"))
		}
		if query.Get("format") != "json" {
			t.Errorf("unexpected format parameter: %s", query.Get("format"))
		}
		if gotReq.Header.Get("X-Api-Key") != testAPIKey {
			t.Error("expected API key header to be set")
		}
		if !strings.HasPrefix(gotReq.Header.Get("X-W3W-Wrapper"), "what3words-go/") {
			t.Errorf("unexpected wrapper header: %s", gotReq.Header.Get("X-W3W-Wrapper"))
		}
	})
	t.Run("conversion to a geojson feature collection succeeds", func(t *testing.T) {
		client := testClient(t, fileResponse(t, 200, "testdata/convert_geojson.json"))
		result, err := client.ConvertTo3wa(context.Background(), Coordinates{Lat: 51.521251, Lng: -0.203586},
			Options{}.Format(FormatGeoJSON))
		if err != nil {
			t.Fatalf("failed to convert coordinates: %s", err)
		}
		if result.GeoJSON == nil {
			t.Fatal("expected a geojson result")
		}
		if result.GeoJSON.Features[0].Properties.Words != "filled.count.soap" {
			t.Errorf("expected words property to be filled.count.soap, got %s",
				result.GeoJSON.Features[0].Properties.Words)
		}
	})
	t.Run("plain response under geojson format surfaces a decode error", func(t *testing.T) {
		client := testClient(t, fileResponse(t, 200, "testdata/convert_json.json"))
		_, err := client.ConvertTo3wa(context.Background(), Coordinates{Lat: 51.521251, Lng: -0.203586},
			Options{}.Format(FormatGeoJSON))
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("expected a DecodeError, got %v", err)
		}
	})
}

func TestClient_ConvertToCoordinates(t *testing.T) {
	t.Run("conversion of a three-word address succeeds", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileResponse(t, 200, "testdata/convert_json.json")(req)
		})
		result, err := client.ConvertToCoordinates(context.Background(), "filled.count.soap", Options{})
		if err != nil {
			t.Fatalf("failed to convert words: %s", err)
		}
		if result.Address.Coordinates.Lng != -0.203586 {
			t.Errorf("unexpected longitude: %f", result.Address.Coordinates.Lng)
		}
		if result.Address.Coordinates.Lat != 51.521251 {
			t.Errorf("unexpected latitude: %f", result.Address.Coordinates.Lat)
		}
		if gotReq.URL.Query().Get("words") != "filled.count.soap" {
			t.Errorf("unexpected words parameter: %s", gotReq.URL.Query().Get("words"))
		}
	})
	t.Run("API error envelope becomes an APIError", func(t *testing.T) {
		client := testClient(t, fileResponse(t, 400, "testdata/api_error.json"))
		_, err := client.ConvertToCoordinates(context.Background(), "filled.count", Options{})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an APIError, got %v", err)
		}
		if apiErr.Code != "BadWords" {
			t.Errorf("expected error code BadWords, got %s", apiErr.Code)
		}
		if apiErr.StatusCode != 400 {
			t.Errorf("expected status code 400, got %d", apiErr.StatusCode)
		}
	})
	t.Run("non-2xx without error envelope is a decode error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 502,
				Body:       io.NopCloser(strings.NewReader("Bad Gateway")),
				Header:     make(stdhttp.Header),
			}, nil
		})
		_, err := client.ConvertToCoordinates(context.Background(), "filled.count.soap", Options{})
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("expected a DecodeError, got %v", err)
		}
	})
	t.Run("transport failure is neither an APIError nor a DecodeError", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("connection refused")
		})
		_, err := client.ConvertToCoordinates(context.Background(), "filled.count.soap", Options{})
		if err == nil {
			t.Fatal("expected a transport error")
		}
		var apiErr *APIError
		var decodeErr *DecodeError
		if errors.As(err, &apiErr) || errors.As(err, &decodeErr) {
			t.Errorf("expected a plain transport error, got %v", err)
		}
	})
}

func TestClient_AvailableLanguages(t *testing.T) {
	t.Run("listing languages succeeds", func(t *testing.T) {
		client := testClient(t, fileResponse(t, 200, "testdata/languages.json"))
		languages, err := client.AvailableLanguages(context.Background())
		if err != nil {
			t.Fatalf("failed to list languages: %s", err)
		}
		if len(languages.Languages) != 3 {
			t.Fatalf("expected 3 languages, got %d", len(languages.Languages))
		}
		if languages.Languages[0].Code != "en" {
			t.Errorf("expected first language code to be en, got %s", languages.Languages[0].Code)
		}
	})
}

func TestClient_GridSection(t *testing.T) {
	box := Square{
		Southwest: Coordinates{Lat: 52.207988, Lng: 0.116126},
		Northeast: Coordinates{Lat: 52.208867, Lng: 0.11754},
	}
	t.Run("plain grid section succeeds", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileResponse(t, 200, "testdata/grid_json.json")(req)
		})
		result, err := client.GridSection(context.Background(), box, FormatJSON)
		if err != nil {
			t.Fatalf("failed to fetch grid section: %s", err)
		}
		if len(result.Grid.Lines) != 3 {
			t.Errorf("expected 3 grid lines, got %d", len(result.Grid.Lines))
		}
		if gotReq.URL.Query().Get("bounding-box") != "52.207988,0.116126,52.208867,0.11754" {
			t.Errorf("unexpected bounding-box parameter: %s", gotReq.URL.Query().Get("bounding-box"))
		}
	})
	t.Run("geojson grid section succeeds", func(t *testing.T) {
		client := testClient(t, fileResponse(t, 200, "testdata/grid_geojson.json"))
		result, err := client.GridSection(context.Background(), box, FormatGeoJSON)
		if err != nil {
			t.Fatalf("failed to fetch grid section: %s", err)
		}
		if result.GeoJSON == nil {
			t.Fatal("expected a geojson result")
		}
	})
}

func TestClient_Autosuggest(t *testing.T) {
	t.Run("suggestions are returned in rank order", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileResponse(t, 200, "testdata/autosuggest.json")(req)
		})
		result, err := client.Autosuggest(context.Background(), "filled.count.so",
			Options{}.Focus(Coordinates{Lat: 51.521251, Lng: -0.203586}))
		if err != nil {
			t.Fatalf("failed to fetch suggestions: %s", err)
		}
		if len(result.Suggestions) != 3 {
			t.Fatalf("expected 3 suggestions, got %d", len(result.Suggestions))
		}
		if result.Suggestions[0].Words != "filled.count.soap" {
			t.Errorf("expected top suggestion to be filled.count.soap, got %s", result.Suggestions[0].Words)
		}
		query := gotReq.URL.Query()
		if query.Get("input") != "filled.count.so" {
			t.Errorf("unexpected input parameter: %s", query.Get("input"))
		}
		if query.Get("focus") != "51.521251,-0.203586" {
			t.Errorf("unexpected focus parameter: %s", query.Get("focus"))
		}
	})
	t.Run("autosuggest with coordinates uses its own endpoint", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileResponse(t, 200, "testdata/autosuggest.json")(req)
		})
		if _, err := client.AutosuggestWithCoordinates(context.Background(), "filled.count.so", Options{}); err != nil {
			t.Fatalf("failed to fetch suggestions: %s", err)
		}
		if gotReq.URL.Path != "/v3/autosuggest-with-coordinates" {
			t.Errorf("unexpected request path: %s", gotReq.URL.Path)
		}
	})
}

func TestClient_AutosuggestSelection(t *testing.T) {
	t.Run("selection reporting succeeds on empty body", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return &stdhttp.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader("")),
				Header:     make(stdhttp.Header),
			}, nil
		})
		selection := Suggestion{Words: "filled.count.soap", Rank: 1}
		if err := client.AutosuggestSelection(context.Background(), "i.h.r", selection); err != nil {
			t.Fatalf("failed to report selection: %s", err)
		}
		query := gotReq.URL.Query()
		if query.Get("selection") != "filled.count.soap" {
			t.Errorf("unexpected selection parameter: %s", query.Get("selection"))
		}
		if query.Get("rank") != "1" {
			t.Errorf("unexpected rank parameter: %s", query.Get("rank"))
		}
		if query.Get("raw-input") != "i.h.r" {
			t.Errorf("unexpected raw-input parameter: %s", query.Get("raw-input"))
		}
	})
}

func TestClient_IsValid3wa(t *testing.T) {
	t.Run("existing address validates", func(t *testing.T) {
		var gotReq *stdhttp.Request
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileResponse(t, 200, "testdata/autosuggest.json")(req)
		})
		valid, err := client.IsValid3wa(context.Background(), "filled.count.soap")
		if err != nil {
			t.Fatalf("failed to validate address: %s", err)
		}
		if !valid {
			t.Error("expected address to be valid")
		}
		if gotReq.URL.Query().Get("n-result") != "1" {
			t.Errorf("unexpected n-result parameter: %s", gotReq.URL.Query().Get("n-result"))
		}
	})
	t.Run("suggestion mismatch does not validate", func(t *testing.T) {
		client := testClient(t, fileResponse(t, 200, "testdata/autosuggest.json"))
		valid, err := client.IsValid3wa(context.Background(), "filled.count.snap")
		if err != nil {
			t.Fatalf("failed to validate address: %s", err)
		}
		if valid {
			t.Error("expected address not to be valid, top suggestion differs")
		}
	})
	t.Run("impossible input never goes remote", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			t.Fatal("expected no remote call for impossible input")
			return nil, nil
		})
		valid, err := client.IsValid3wa(context.Background(), "not a 3wa")
		if err != nil {
			t.Fatalf("failed to validate address: %s", err)
		}
		if valid {
			t.Error("expected impossible input to be invalid")
		}
	})
}
