// Package sitestats tracks per-site usage for the analytics widget:
// how long each site was open, how often, and whether it counts as
// productive. Real usage needs a privileged history provider; when
// none is available the tracker fabricates synthetic records that are
// flagged as such and surfaced that way in the UI.
package sitestats

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

// Category classifies a tracked site.
type Category string

const (
	Productive  Category = "productive"
	Neutral     Category = "neutral"
	Distracting Category = "distracting"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Productive, Neutral, Distracting:
		return true
	}
	return false
}

// Record is one tracked site.
type Record struct {
	URL       string   `json:"url"`
	TimeSpent int      `json:"time_spent"` // minutes today
	Category  Category `json:"category"`
	Visits    int      `json:"visits"`
	Limit     int      `json:"limit"` // daily minutes, 0 = none
	Synthetic bool     `json:"synthetic"`
}

// OverLimit reports whether the site has exceeded its daily limit.
func (r Record) OverLimit() bool {
	return r.Limit > 0 && r.TimeSpent >= r.Limit
}

// Normalize canonicalizes a site URL for identity: scheme, www
// prefix, trailing slash, and case are stripped.
func Normalize(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	for _, prefix := range []string{"https://", "http://"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")
	return s
}

// Tracker wraps the persisted record list.
type Tracker struct {
	store prefs.Store
}

// NewTracker loads the tracker over store. No seeding happens here;
// synthetic data is generated explicitly via Populate.
func NewTracker(store prefs.Store) *Tracker {
	return &Tracker{store: store}
}

// Records returns all tracked sites in stored order.
func (t *Tracker) Records() []Record {
	return prefs.GetOr(t.store, prefs.KeyWebsiteData, []Record(nil))
}

// Add tracks a new site. Duplicate URLs (after normalization) are
// rejected; unknown categories default to neutral.
func (t *Tracker) Add(rawURL string, cat Category) (Record, error) {
	u := Normalize(rawURL)
	if u == "" {
		return Record{}, fmt.Errorf("sitestats: empty URL")
	}
	if !cat.Valid() {
		cat = Neutral
	}

	records := t.Records()
	for _, r := range records {
		if r.URL == u {
			return Record{}, fmt.Errorf("sitestats: %s already tracked", u)
		}
	}

	rec := Record{URL: u, Category: cat}
	if err := t.save(append(records, rec)); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Remove stops tracking a site.
func (t *Tracker) Remove(rawURL string) error {
	u := Normalize(rawURL)
	records := t.Records()
	kept := records[:0]
	for _, r := range records {
		if r.URL != u {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("sitestats: %s not tracked", u)
	}
	return t.save(kept)
}

// SetLimit sets the daily minute limit for a site; 0 clears it.
func (t *Tracker) SetLimit(rawURL string, minutes int) error {
	u := Normalize(rawURL)
	records := t.Records()
	for i := range records {
		if records[i].URL == u {
			if minutes < 0 {
				minutes = 0
			}
			records[i].Limit = minutes
			return t.save(records)
		}
	}
	return fmt.Errorf("sitestats: %s not tracked", u)
}

// RecordVisit adds minutes and a visit to a site's tally. Recording
// real usage clears the synthetic flag.
func (t *Tracker) RecordVisit(rawURL string, minutes int) error {
	u := Normalize(rawURL)
	records := t.Records()
	for i := range records {
		if records[i].URL == u {
			records[i].Visits++
			if minutes > 0 {
				records[i].TimeSpent += minutes
			}
			records[i].Synthetic = false
			return t.save(records)
		}
	}
	return fmt.Errorf("sitestats: %s not tracked", u)
}

// Reset wipes every record.
func (t *Tracker) Reset() error {
	return t.store.Remove(prefs.KeyWebsiteData)
}

// Totals sums minutes per category.
func (t *Tracker) Totals() map[Category]int {
	totals := map[Category]int{}
	for _, r := range t.Records() {
		totals[r.Category] += r.TimeSpent
	}
	return totals
}

// TopByTime returns up to n records ordered by time spent,
// descending.
func (t *Tracker) TopByTime(n int) []Record {
	records := t.Records()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TimeSpent > records[j].TimeSpent
	})
	if n < len(records) {
		records = records[:n]
	}
	return records
}

func (t *Tracker) save(records []Record) error {
	return prefs.Set(t.store, prefs.KeyWebsiteData, records)
}
