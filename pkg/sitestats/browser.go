package sitestats

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// browserNames maps process names to browser identifiers. History
// provider selection keys off which browser is actually running.
var browserNames = map[string]string{
	"firefox":       "firefox",
	"firefox-bin":   "firefox",
	"chrome":        "chrome",
	"google-chrome": "chrome",
	"chromium":      "chromium",
	"brave":         "brave",
	"msedge":        "edge",
	"safari":        "safari",
	"librewolf":     "firefox",
	"vivaldi-bin":   "vivaldi",
}

// DetectBrowsers enumerates running processes and reports which known
// browsers are active. Enumeration failures return an empty slice;
// the tracker then stays on synthetic data.
func DetectBrowsers() []string {
	procs, err := process.Processes()
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var found []string
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		key := strings.ToLower(strings.TrimSuffix(name, ".exe"))
		if browser, ok := browserNames[key]; ok && !seen[browser] {
			seen[browser] = true
			found = append(found, browser)
		}
	}
	return found
}
