package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// swapped out in tests to exercise each platform branch
var getRuntime = func() string { return runtime.GOOS }

// OpenBrowser launches the system browser at url. Backs the --open
// flags, which jump from a cached entity to its external page.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch rt := getRuntime(); rt {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", rt)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
