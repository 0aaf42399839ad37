// Package weather fetches current conditions from OpenWeatherMap and
// derives a clothing suggestion from them.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	// iconURLPattern is filled with the icon code from a snapshot.
	iconURLPattern = "https://openweathermap.org/img/wn/%s@2x.png"
)

// Snapshot is the set of fields extracted from one successful API
// response.
type Snapshot struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature_c"`
	FeelsLike   float64 `json:"feels_like_c"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"` // coarse category, e.g. "Rain"
	Humidity    int     `json:"humidity_pct"`
	WindSpeed   float64 `json:"wind_speed_ms"`
	IconCode    string  `json:"icon"`
	FetchedAt   time.Time
}

// Client calls the weather API. The primary fetch times out after 10
// seconds, the icon fetch after 5; neither is retried automatically.
type Client struct {
	httpClient  *http.Client
	iconClient  *http.Client
	baseURL     string
	iconPattern string
	lang        string
	circuit     *gobreaker.CircuitBreaker
}

func NewClient(lang string) *Client {
	if lang == "" {
		lang = constants.WeatherLanguage
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient:  &http.Client{Timeout: constants.WeatherFetchTimeout},
		iconClient:  &http.Client{Timeout: constants.WeatherIconTimeout},
		baseURL:     defaultBaseURL,
		iconPattern: iconURLPattern,
		lang:        lang,
		circuit:     cb,
	}
}

// Current fetches current conditions for the city. Error mapping: missing
// or rejected key -> ErrUnauthorized, unknown city -> ErrNotFound, other
// non-2xx -> ErrUpstream, transport failure or open breaker -> ErrNetwork.
func (c *Client) Current(ctx context.Context, city, apiKey string) (Snapshot, error) {
	if apiKey == "" {
		return Snapshot{}, fmt.Errorf("%w: no api key configured", errors.ErrUnauthorized)
	}
	if city == "" {
		return Snapshot{}, fmt.Errorf("%w: no city given", errors.ErrNotFound)
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", apiKey)
	values.Set("units", "metric")
	values.Set("lang", c.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return Snapshot{}, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrNetwork, err)
		}
		return resp, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return Snapshot{}, fmt.Errorf("%w: weather service temporarily unavailable", errors.ErrNetwork)
		}
		return Snapshot{}, err
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return Snapshot{}, fmt.Errorf("%w: the weather service rejected the key", errors.ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return Snapshot{}, fmt.Errorf("%w: city %q", errors.ErrNotFound, city)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return Snapshot{}, fmt.Errorf("%w: unexpected status %d", errors.ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Snapshot{}, fmt.Errorf("%w: malformed response: %v", errors.ErrUpstream, err)
	}

	snap := Snapshot{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		FetchedAt:   time.Now(),
	}
	if len(payload.Weather) > 0 {
		snap.Condition = payload.Weather[0].Main
		snap.Description = payload.Weather[0].Description
		snap.IconCode = payload.Weather[0].Icon
	}

	return snap, nil
}

// Icon fetches the PNG for an icon code. It is best-effort: callers show
// the snapshot regardless of whether this succeeds.
func (c *Client) Icon(ctx context.Context, code string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: no icon code", errors.ErrNotFound)
	}

	u := fmt.Sprintf(c.iconPattern, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.iconClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: icon fetch status %d", errors.ErrUpstream, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
