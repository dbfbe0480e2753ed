package search

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher opens URLs in the system browser. Tests swap in a fake.
type Launcher interface {
	Open(url string) error
}

// SystemLauncher shells out to the platform opener.
type SystemLauncher struct{}

// Open hands url to xdg-open (Linux), open (macOS), or rundll32
// (Windows).
func (SystemLauncher) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	// Detach so a slow browser never blocks the UI loop.
	go func() { _ = cmd.Wait() }()
	return nil
}
