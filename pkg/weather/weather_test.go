package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

func TestClientFetchByCity(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"units": r.URL.Query().Get("units"),
			"appid": r.URL.Query().Get("appid"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name":    "Reykjavik",
			"weather": []map[string]any{{"main": "Snow", "description": "light snow"}},
			"main":    map[string]any{"temp": -2.5, "temp_min": -5.0, "temp_max": -1.0, "humidity": 80},
			"wind":    map[string]any{"speed": 5.0},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key").WithBaseURL(srv.URL)
	got, err := c.Fetch(context.Background(), Location{City: "Reykjavik"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotQuery["q"] != "Reykjavik" || gotQuery["units"] != "metric" || gotQuery["appid"] != "test-key" {
		t.Errorf("query = %v", gotQuery)
	}
	if got.Condition != "Snow" || got.TempC != -2.5 || got.Humidity != 80 {
		t.Errorf("conditions = %+v", got)
	}
	if got.WindKph != 18 {
		t.Errorf("wind = %v kph, want 18 (5 m/s)", got.WindKph)
	}
	if got.Synthetic {
		t.Error("live reading marked synthetic")
	}
}

func TestClientFetchByCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			t.Error("expected lat/lon query parameters")
		}
		fmt.Fprint(w, `{"name":"Here","main":{"temp":20},"weather":[{"main":"Clear"}]}`)
	}))
	defer srv.Close()

	c := NewClient("k").WithBaseURL(srv.URL)
	if _, err := c.Fetch(context.Background(), Location{Lat: 64.1, Lon: -21.9, HasCoord: true}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}

func TestClientRequiresKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Fetch(context.Background(), Location{City: "x"}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad").WithBaseURL(srv.URL)
	if _, err := c.Fetch(context.Background(), Location{City: "x"}); err == nil {
		t.Error("expected error on 401")
	}
}

type fakeFetcher struct {
	conditions Conditions
	err        error
	calls      int
}

func (f *fakeFetcher) Fetch(context.Context, Location) (Conditions, error) {
	f.calls++
	return f.conditions, f.err
}

func TestServiceServesFreshCache(t *testing.T) {
	store := prefs.NewMemStore()
	s := NewService(store, nil, nil, nil)

	cached := Conditions{Location: "Oslo", TempC: 4, FetchedAt: time.Now().Add(-time.Hour)}
	prefs.Set(store, prefs.KeyWeather, cached)

	got := s.Current()
	if got.Location != "Oslo" || got.Synthetic {
		t.Errorf("Current = %+v, want cached reading", got)
	}
}

func TestServiceSyntheticFallback(t *testing.T) {
	// No key, no cache: placeholder data, never an error.
	s := NewService(prefs.NewMemStore(), nil, nil, nil)
	got := s.Current()
	if !got.Synthetic {
		t.Error("expected synthetic conditions without cache")
	}
	if got.Condition == "" || got.Location == "" {
		t.Errorf("synthetic reading incomplete: %+v", got)
	}
}

func TestServiceStaleCacheGoesSynthetic(t *testing.T) {
	store := prefs.NewMemStore()
	s := NewService(store, nil, nil, nil)

	stale := Conditions{Location: "Oslo", FetchedAt: time.Now().Add(-4 * time.Hour)}
	prefs.Set(store, prefs.KeyWeather, stale)

	if got := s.Current(); !got.Synthetic {
		t.Errorf("stale cache should fall back to synthetic, got %+v", got)
	}
}

func TestServiceRefreshPolicy(t *testing.T) {
	store := prefs.NewMemStore()
	f := &fakeFetcher{conditions: Conditions{Location: "Bergen", TempC: 9}}
	s := NewService(store, f, nil, nil)

	s.Refresh(context.Background())
	if f.calls != 1 {
		t.Fatalf("first refresh: %d calls, want 1", f.calls)
	}

	// Within the hour: no second fetch.
	s.Refresh(context.Background())
	if f.calls != 1 {
		t.Errorf("refresh inside window: %d calls, want 1", f.calls)
	}

	if got := s.Current(); got.Location != "Bergen" {
		t.Errorf("Current after refresh = %+v", got)
	}
}

func TestServiceRefreshFailureKeepsCache(t *testing.T) {
	store := prefs.NewMemStore()
	good := Conditions{Location: "Bergen", FetchedAt: time.Now()}
	prefs.Set(store, prefs.KeyWeather, good)

	f := &fakeFetcher{err: fmt.Errorf("network down")}
	s := NewService(store, f, nil, nil)
	s.Refresh(context.Background())

	if got := s.Current(); got.Location != "Bergen" || got.Synthetic {
		t.Errorf("failed refresh should keep cache, got %+v", got)
	}
}

func TestServiceSetLocationForcesRefresh(t *testing.T) {
	store := prefs.NewMemStore()
	f := &fakeFetcher{conditions: Conditions{Location: "Tromso"}}
	s := NewService(store, f, nil, nil)

	s.Refresh(context.Background())
	s.SetLocation("Tromso", true)
	s.Refresh(context.Background())

	if f.calls != 2 {
		t.Errorf("calls = %d, want 2 (location change resets the clock)", f.calls)
	}
}

func TestServiceCustomLocationWins(t *testing.T) {
	store := prefs.NewMemStore()
	prefs.Set(store, prefs.KeyWeatherLocation, "Kyoto")
	prefs.Set(store, prefs.KeyUseCustomLocation, true)

	s := NewService(store, nil, FixedLocator{Lat: 1, Lon: 2}, nil)
	loc := s.location()
	if loc.City != "Kyoto" || loc.HasCoord {
		t.Errorf("location = %+v, want custom city", loc)
	}
}

func TestServiceLocatorUsedWithoutCustom(t *testing.T) {
	s := NewService(prefs.NewMemStore(), nil, FixedLocator{Lat: 64.1, Lon: -21.9}, nil)
	loc := s.location()
	if !loc.HasCoord || loc.Lat != 64.1 {
		t.Errorf("location = %+v, want locator coordinates", loc)
	}
}

func TestSyntheticDeterministic(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	a := Synthetic(at)
	b := Synthetic(at)
	if a != b {
		t.Error("synthetic conditions should be deterministic for a given time")
	}
	if !a.Synthetic {
		t.Error("synthetic flag not set")
	}

	night := Synthetic(time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC))
	if night.TempC >= a.TempC {
		t.Errorf("night temp %v should be below afternoon temp %v", night.TempC, a.TempC)
	}
}
