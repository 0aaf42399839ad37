package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julianstephens/daybook/internal/errors"
)

const sampleResponse = `{
	"name": "Istanbul",
	"sys": {"country": "TR"},
	"main": {"temp": 21.4, "feels_like": 20.1, "humidity": 56},
	"wind": {"speed": 4.2},
	"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("en")
	c.baseURL = srv.URL
	c.httpClient = srv.Client()
	c.iconClient = srv.Client()
	return c
}

func TestCurrent(t *testing.T) {
	t.Run("extracts the snapshot fields", func(t *testing.T) {
		var gotQuery map[string]string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"q":     r.URL.Query().Get("q"),
				"appid": r.URL.Query().Get("appid"),
				"units": r.URL.Query().Get("units"),
				"lang":  r.URL.Query().Get("lang"),
			}
			w.Write([]byte(sampleResponse))
		})

		snap, err := c.Current(context.Background(), "Istanbul", "test-key")
		if err != nil {
			t.Fatalf("Current failed: %v", err)
		}

		if gotQuery["q"] != "Istanbul" || gotQuery["appid"] != "test-key" {
			t.Errorf("query = %v", gotQuery)
		}
		if gotQuery["units"] != "metric" || gotQuery["lang"] != "en" {
			t.Errorf("query = %v", gotQuery)
		}

		if snap.City != "Istanbul" || snap.Country != "TR" {
			t.Errorf("place = %s, %s", snap.City, snap.Country)
		}
		if snap.Temperature != 21.4 || snap.FeelsLike != 20.1 {
			t.Errorf("temps = %v, %v", snap.Temperature, snap.FeelsLike)
		}
		if snap.Humidity != 56 || snap.WindSpeed != 4.2 {
			t.Errorf("humidity/wind = %v, %v", snap.Humidity, snap.WindSpeed)
		}
		if snap.Condition != "Clouds" || snap.Description != "scattered clouds" || snap.IconCode != "03d" {
			t.Errorf("conditions = %+v", snap)
		}
		if snap.FetchedAt.IsZero() {
			t.Error("FetchedAt not set")
		}
	})

	t.Run("missing key fails without a request", func(t *testing.T) {
		called := false
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := c.Current(context.Background(), "Istanbul", "")
		if !errors.Is(err, errors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if called {
			t.Error("request sent despite missing key")
		}
	})

	t.Run("status mapping", func(t *testing.T) {
		cases := []struct {
			status int
			want   error
		}{
			{http.StatusUnauthorized, errors.ErrUnauthorized},
			{http.StatusNotFound, errors.ErrNotFound},
			{http.StatusInternalServerError, errors.ErrUpstream},
			{http.StatusTooManyRequests, errors.ErrUpstream},
		}
		for _, tc := range cases {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			_, err := c.Current(context.Background(), "Istanbul", "test-key")
			if !errors.Is(err, tc.want) {
				t.Errorf("status %d: got %v, want %v", tc.status, err, tc.want)
			}
		}
	})

	t.Run("transport failure is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close() // nothing listening anymore

		c := NewClient("en")
		c.baseURL = url

		_, err := c.Current(context.Background(), "Istanbul", "test-key")
		if !errors.Is(err, errors.ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("malformed body is an upstream error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})
		_, err := c.Current(context.Background(), "Istanbul", "test-key")
		if !errors.Is(err, errors.ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})
}

func TestIcon(t *testing.T) {
	t.Run("fetches the bytes", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("png-bytes"))
		})
		c.iconPattern = c.baseURL + "/%s.png"

		data, err := c.Icon(context.Background(), "03d")
		if err != nil {
			t.Fatalf("Icon failed: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("empty code", func(t *testing.T) {
		c := NewClient("en")
		if _, err := c.Icon(context.Background(), ""); !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("non-200 is an upstream error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		c.iconPattern = c.baseURL + "/%s.png"

		if _, err := c.Icon(context.Background(), "03d"); !errors.Is(err, errors.ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})
}
