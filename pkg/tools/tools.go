// Package tools manages the link catalogs behind the dock trays:
// AI assistants, social networks, Google apps, and Microsoft apps.
// Each category has its own persisted list keyed off the panel
// category name.
package tools

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

// Tool is one launchable entry in a tray.
type Tool struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// StorageKey returns the preference key holding the catalog for a
// category, e.g. "ai-tools".
func StorageKey(cat panel.Category) string {
	return cat.String() + "-tools"
}

// Catalog is the persisted tool list for one category.
type Catalog struct {
	store prefs.Store
	cat   panel.Category
}

// NewCatalog loads the catalog for cat, seeding the built-in roster
// on first run.
func NewCatalog(store prefs.Store, cat panel.Category) *Catalog {
	c := &Catalog{store: store, cat: cat}
	if _, ok := prefs.Get[[]Tool](store, StorageKey(cat)); !ok {
		_ = prefs.Set(store, StorageKey(cat), DefaultsFor(cat))
	}
	return c
}

// Category returns the tray category this catalog serves.
func (c *Catalog) Category() panel.Category { return c.cat }

// Tools returns the catalog entries in stored order.
func (c *Catalog) Tools() []Tool {
	return prefs.GetOr(c.store, StorageKey(c.cat), DefaultsFor(c.cat))
}

// Add appends a tool, assigning it an ID.
func (c *Catalog) Add(name, rawURL string) (Tool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tool{}, fmt.Errorf("tool has no name")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	t := Tool{ID: uuid.NewString(), Name: name, URL: rawURL}
	tools := append(c.Tools(), t)
	if err := prefs.Set(c.store, StorageKey(c.cat), tools); err != nil {
		return Tool{}, err
	}
	return t, nil
}

// Remove deletes the tool with the given ID.
func (c *Catalog) Remove(id string) error {
	tools := c.Tools()
	kept := tools[:0]
	for _, t := range tools {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tools) {
		return fmt.Errorf("no tool with id %q", id)
	}
	return prefs.Set(c.store, StorageKey(c.cat), kept)
}

// DefaultsFor returns the built-in roster for a category.
func DefaultsFor(cat panel.Category) []Tool {
	switch cat {
	case panel.AI:
		return []Tool{
			{ID: "chatgpt", Name: "ChatGPT", URL: "https://chatgpt.com", Icon: "✨"},
			{ID: "claude", Name: "Claude", URL: "https://claude.ai", Icon: "✨"},
			{ID: "gemini", Name: "Gemini", URL: "https://gemini.google.com", Icon: "✨"},
			{ID: "copilot", Name: "Copilot", URL: "https://copilot.microsoft.com", Icon: "✨"},
			{ID: "midjourney", Name: "Midjourney", URL: "https://www.midjourney.com", Icon: "✨"},
		}
	case panel.Social:
		return []Tool{
			{ID: "x", Name: "X", URL: "https://x.com"},
			{ID: "facebook", Name: "Facebook", URL: "https://www.facebook.com"},
			{ID: "instagram", Name: "Instagram", URL: "https://www.instagram.com"},
			{ID: "linkedin", Name: "LinkedIn", URL: "https://www.linkedin.com"},
			{ID: "reddit", Name: "Reddit", URL: "https://www.reddit.com"},
			{ID: "discord", Name: "Discord", URL: "https://discord.com"},
		}
	case panel.Google:
		return []Tool{
			{ID: "gmail", Name: "Gmail", URL: "https://mail.google.com"},
			{ID: "drive", Name: "Drive", URL: "https://drive.google.com"},
			{ID: "calendar", Name: "Calendar", URL: "https://calendar.google.com"},
			{ID: "photos", Name: "Photos", URL: "https://photos.google.com"},
			{ID: "maps", Name: "Maps", URL: "https://maps.google.com"},
			{ID: "youtube", Name: "YouTube", URL: "https://www.youtube.com"},
		}
	case panel.Microsoft:
		return []Tool{
			{ID: "outlook", Name: "Outlook", URL: "https://outlook.live.com"},
			{ID: "onedrive", Name: "OneDrive", URL: "https://onedrive.live.com"},
			{ID: "office", Name: "Office", URL: "https://www.office.com"},
			{ID: "teams", Name: "Teams", URL: "https://teams.microsoft.com"},
			{ID: "todo", Name: "To Do", URL: "https://to-do.office.com"},
		}
	default:
		return nil
	}
}
