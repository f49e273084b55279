// Package status polls system indicators (volume, battery) through their
// command-line tools and reduces the output to icon names and display
// strings. Pollers are driven by the scheduler and absorb every tool
// failure: a broken poller shows a muted/absent indicator, never an error.
package status

import (
	"strconv"
	"strings"

	"github.com/broomlabs/wloverview/internal/action"
)

// Volume icon names, keyed to the standard icon theme.
const (
	VolumeIconMuted  = "audio-volume-muted-symbolic"
	VolumeIconLow    = "audio-volume-low-symbolic"
	VolumeIconMedium = "audio-volume-medium-symbolic"
	VolumeIconHigh   = "audio-volume-high-symbolic"
)

// VolumeIcon polls the default audio sink and returns the icon representing
// its level. Any failure reads as muted.
func VolumeIcon(exec action.Executor, command string) string {
	out, err := exec.Output([]string{command, "get-volume", "@DEFAULT_AUDIO_SINK@"})
	if err != nil {
		return VolumeIconMuted
	}
	return ParseVolumeIcon(out)
}

// ParseVolumeIcon maps wpctl get-volume output ("Volume: 0.55" or
// "Volume: 0.55 [MUTED]") to an icon name.
func ParseVolumeIcon(out string) string {
	out = strings.TrimSpace(out)
	if out == "" || strings.Contains(out, "MUTED") {
		return VolumeIconMuted
	}

	fields := strings.Fields(out)
	vol, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return VolumeIconMuted
	}

	switch {
	case vol == 0:
		return VolumeIconMuted
	case vol < 0.33:
		return VolumeIconLow
	case vol < 0.66:
		return VolumeIconMedium
	default:
		return VolumeIconHigh
	}
}
