// Package launcher opens site URLs in the user's browser.
package launcher

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/browser"

	"github.com/ryoma-abe/site-launcher/internal/log"
)

// Launcher opens URLs, either via the platform default browser or a
// configured browser command.
type Launcher struct {
	// Command, when non-empty, is run as "command url" instead of the
	// platform default browser. It may carry extra arguments, e.g.
	// "firefox --private-window".
	Command string
}

// New creates a Launcher. An empty command means the system default.
func New(command string) *Launcher {
	return &Launcher{Command: strings.TrimSpace(command)}
}

// Open opens url. The process is started and not waited on; the
// launcher's job ends once the hand-off to the browser succeeds.
func (l *Launcher) Open(url string) error {
	log.Info(log.CatLaunch, "Opening site", "url", url, "command", l.Command)

	if l.Command == "" {
		if err := browser.OpenURL(url); err != nil {
			log.ErrorErr(log.CatLaunch, "Failed to open browser", err, "url", url)
			return fmt.Errorf("opening %s: %w", url, err)
		}
		return nil
	}

	parts := strings.Fields(l.Command)
	args := append(parts[1:], url) //nolint:gocritic // parts is local
	cmd := exec.Command(parts[0], args...)
	if err := cmd.Start(); err != nil {
		log.ErrorErr(log.CatLaunch, "Failed to start browser command", err, "command", l.Command)
		return fmt.Errorf("starting %s: %w", parts[0], err)
	}
	// Detach; the browser outlives us.
	go func() { _ = cmd.Wait() }()
	return nil
}
