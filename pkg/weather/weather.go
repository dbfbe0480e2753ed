// Package weather fetches current conditions from OpenWeatherMap and
// caches the last good reading. Without an API key, or when a fetch
// fails with no usable cache, it fabricates clearly labeled synthetic
// conditions so the widget always has something to show.
package weather

import "time"

// Conditions is one weather reading, metric units.
type Conditions struct {
	Location    string    `json:"location"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	TempC       float64   `json:"temp_c"`
	MinC        float64   `json:"min_c"`
	MaxC        float64   `json:"max_c"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	Synthetic   bool      `json:"synthetic"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Location selects what to fetch: coordinates when set, otherwise
// the city name.
type Location struct {
	City     string  `json:"city"`
	Lat, Lon float64 `json:"-"`
	HasCoord bool    `json:"-"`
}

// Locator resolves the machine's position. Geolocation is an
// external collaborator; tests and keyless setups use a fixed one.
type Locator interface {
	Locate() (lat, lon float64, err error)
}

// FixedLocator always reports the same coordinates.
type FixedLocator struct {
	Lat, Lon float64
}

func (f FixedLocator) Locate() (float64, float64, error) {
	return f.Lat, f.Lon, nil
}

const (
	// maxCacheAge bounds how stale a cached reading may be and
	// still be shown.
	maxCacheAge = 3 * time.Hour

	// refreshAfter is the minimum gap between live fetches.
	refreshAfter = time.Hour
)
