package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Swapped out in tests to exercise the unsupported-platform path.
var getRuntime = func() string { return runtime.GOOS }

// OpenBrowser opens the system default browser at the given URL.
//
// Used by the OAuth flow to hand the user off to the Spotify consent page.
func OpenBrowser(url string) error {
	var name string
	var args []string

	switch rt := getRuntime(); rt {
	case "darwin":
		name = "open"
		args = []string{url}
	case "linux":
		name = "xdg-open"
		args = []string{url}
	case "windows":
		name = "cmd"
		args = []string{"/c", "start", url}
	default:
		return fmt.Errorf("unsupported platform: %s", rt)
	}

	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
