package clipboard

import (
	"context"
	"os"
	"runtime"
	"time"

	"nbdiff/internal/util"
)

// CopyText places text on the system clipboard via the platform's paste
// command. On Linux the Wayland tool is preferred when a Wayland session
// is detected, with X11 xclip as the fallback. Unknown platforms are a
// silent no-op.
func CopyText(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch runtime.GOOS {
	case "darwin":
		return util.RunWithStdin(ctx, text, "pbcopy")
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if err := util.RunWithStdin(ctx, text, "wl-copy"); err == nil {
				return nil
			}
		}
		return util.RunWithStdin(ctx, text, "xclip", "-selection", "clipboard")
	case "windows":
		return util.RunWithStdin(ctx, text, "clip")
	default:
		return nil
	}
}
