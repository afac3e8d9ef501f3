// Package browser opens URLs in the user's default web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/f3rmion/unilookup/internal/logging"
)

// Command returns the argv that opens url on goos.
func Command(goos, url string) []string {
	switch goos {
	case "darwin":
		return []string{"open", url}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}
	default:
		return []string{"xdg-open", url}
	}
}

// Open launches the default browser on url and returns without waiting
// for it to exit.
func Open(url string) error {
	argv := Command(runtime.GOOS, url)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", argv[0], err)
	}
	go cmd.Wait()
	return nil
}

// OpenAfter opens url once delay has passed, giving a server time to start
// listening. Failures are logged.
func OpenAfter(delay time.Duration, url string) *time.Timer {
	return time.AfterFunc(delay, func() {
		logging.Info.Printf("Opening browser at %s", url)
		if err := Open(url); err != nil {
			logging.Info.Printf("Could not open browser: %v", err)
		}
	})
}
