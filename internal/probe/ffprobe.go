// Package probe derives a video's resolution by inspecting the file with
// ffprobe, for files whose path carries no resolution token.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Prober wraps the external ffprobe binary. When the binary is absent every
// probe reports ErrUnavailable and the pipeline simply leaves the
// resolution unset.
type Prober struct {
	bin string
	log *slog.Logger
}

// ErrUnavailable is returned when ffprobe is not installed.
var ErrUnavailable = fmt.Errorf("probe: ffprobe not available")

// New locates ffprobe on PATH.
func New(log *slog.Logger) *Prober {
	if log == nil {
		log = slog.Default()
	}
	bin, err := exec.LookPath("ffprobe")
	if err != nil {
		log.Debug("ffprobe not found, path-less resolutions stay unset")
		bin = ""
	}
	return &Prober{bin: bin, log: log}
}

// Available reports whether ffprobe can be invoked.
func (p *Prober) Available() bool {
	return p.bin != ""
}

// WidthHeight returns the dimensions of the first video stream.
func (p *Prober) WidthHeight(ctx context.Context, path string) (int, int, error) {
	if !p.Available() {
		return 0, 0, ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, p.bin,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	fields := strings.SplitN(strings.TrimSpace(string(out)), "x", 2)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("ffprobe %s: unexpected output %q", path, strings.TrimSpace(string(out)))
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe %s: parse width: %w", path, err)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe %s: parse height: %w", path, err)
	}
	return width, height, nil
}

// LabelForWidth maps a probed frame width onto a resolution label. Note the
// labels differ from the path-token ladder ("4K" here, "2160p" there); the
// organizer warns when a library ends up mixing the two.
func LabelForWidth(width int) string {
	switch {
	case width >= 15360:
		return "16K"
	case width >= 7680:
		return "8K"
	case width >= 3840:
		return "4K"
	case width >= 1920:
		return "1080p"
	case width >= 1280:
		return "720p"
	case width >= 854:
		return "480p"
	default:
		return "SD"
	}
}
