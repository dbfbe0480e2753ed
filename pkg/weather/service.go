package weather

import (
	"context"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

// Fetcher is the client-side surface the service needs; *Client
// satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, loc Location) (Conditions, error)
}

// Service owns the refresh policy: live fetches at most hourly,
// cached readings served while fresher than three hours, synthetic
// fallback otherwise.
type Service struct {
	store   prefs.Store
	client  Fetcher
	locator Locator
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires the service. client may be nil when no API key is
// configured; locator may be nil when only city lookups are wanted.
func NewService(store prefs.Store, client Fetcher, locator Locator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   store,
		client:  client,
		locator: locator,
		logger:  logger,
		now:     time.Now,
	}
}

// Current returns the conditions to display right now: the cached
// reading when it is fresh enough, otherwise synthetic placeholder
// data. It never fails.
func (s *Service) Current() Conditions {
	if c, ok := prefs.Get[Conditions](s.store, prefs.KeyWeather); ok {
		if s.now().Sub(c.FetchedAt) < maxCacheAge {
			return c
		}
	}
	return Synthetic(s.now())
}

// NeedsRefresh reports whether enough time has passed since the last
// live fetch to try another one.
func (s *Service) NeedsRefresh() bool {
	last, ok := prefs.Get[time.Time](s.store, prefs.KeyWeatherLastUpdate)
	if !ok {
		return true
	}
	return s.now().Sub(last) >= refreshAfter
}

// Refresh performs a live fetch if the policy allows it and a client
// is configured, storing the result. Fetch failures are logged and
// leave the cache untouched so Current falls back gracefully.
func (s *Service) Refresh(ctx context.Context) {
	if !s.NeedsRefresh() {
		return
	}
	if s.client == nil {
		s.logger.Debug("weather refresh skipped, no client configured")
		return
	}

	loc := s.location()
	conditions, err := s.client.Fetch(ctx, loc)
	if err != nil {
		s.logger.Warn("weather fetch failed", "error", err)
		return
	}

	// The service owns cache freshness; never trust the transport to
	// have stamped the reading.
	conditions.FetchedAt = s.now()
	if err := prefs.Set(s.store, prefs.KeyWeather, conditions); err != nil {
		s.logger.Warn("storing weather reading", "error", err)
		return
	}
	if err := prefs.Set(s.store, prefs.KeyWeatherLastUpdate, s.now()); err != nil {
		s.logger.Warn("storing weather timestamp", "error", err)
	}
}

// SetLocation updates the configured location and invalidates the
// refresh clock so the next Refresh fetches immediately.
func (s *Service) SetLocation(city string, useCustom bool) {
	if err := prefs.Set(s.store, prefs.KeyWeatherLocation, city); err != nil {
		s.logger.Warn("storing weather location", "error", err)
	}
	if err := prefs.Set(s.store, prefs.KeyUseCustomLocation, useCustom); err != nil {
		s.logger.Warn("storing location mode", "error", err)
	}
	_ = s.store.Remove(prefs.KeyWeatherLastUpdate)
}

// SetClient swaps the fetcher, used when the API key changes at
// runtime.
func (s *Service) SetClient(client Fetcher) {
	s.client = client
	_ = s.store.Remove(prefs.KeyWeatherLastUpdate)
}

// location resolves what to fetch: the custom city when configured,
// otherwise coordinates from the locator, otherwise the stored city.
func (s *Service) location() Location {
	city := prefs.GetOr(s.store, prefs.KeyWeatherLocation, "")
	useCustom := prefs.GetOr(s.store, prefs.KeyUseCustomLocation, false)

	if useCustom && city != "" {
		return Location{City: city}
	}
	if s.locator != nil {
		if lat, lon, err := s.locator.Locate(); err == nil {
			return Location{Lat: lat, Lon: lon, HasCoord: true}
		} else {
			s.logger.Debug("geolocation unavailable", "error", err)
		}
	}
	return Location{City: city}
}
