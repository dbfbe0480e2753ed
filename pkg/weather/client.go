package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client talks to the OpenWeatherMap current-conditions endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the endpoint, for tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// owmResponse mirrors the fields we use from the API payload.
type owmResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s in metric mode
	} `json:"wind"`
}

// Fetch retrieves current conditions for loc in metric units.
func (c *Client) Fetch(ctx context.Context, loc Location) (Conditions, error) {
	if c.apiKey == "" {
		return Conditions{}, fmt.Errorf("weather: no API key configured")
	}

	q := url.Values{}
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	if loc.HasCoord {
		q.Set("lat", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
		q.Set("lon", strconv.FormatFloat(loc.Lon, 'f', 4, 64))
	} else if loc.City != "" {
		q.Set("q", loc.City)
	} else {
		return Conditions{}, fmt.Errorf("weather: no location to fetch")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: fetching conditions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("weather: API returned %s", resp.Status)
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Conditions{}, fmt.Errorf("weather: decoding response: %w", err)
	}

	out := Conditions{
		Location:  payload.Name,
		TempC:     payload.Main.Temp,
		MinC:      payload.Main.TempMin,
		MaxC:      payload.Main.TempMax,
		Humidity:  payload.Main.Humidity,
		WindKph:   payload.Wind.Speed * 3.6,
		FetchedAt: time.Now(),
	}
	if len(payload.Weather) > 0 {
		out.Condition = payload.Weather[0].Main
		out.Description = payload.Weather[0].Description
	}
	if out.Location == "" {
		out.Location = loc.City
	}
	return out, nil
}
