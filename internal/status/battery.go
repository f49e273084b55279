package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/broomlabs/wloverview/internal/action"
)

// Battery icon names by charge band.
const (
	BatteryIconFull    = "battery-full-symbolic"
	BatteryIconGood    = "battery-good-symbolic"
	BatteryIconMedium  = "battery-medium-symbolic"
	BatteryIconLow     = "battery-low-symbolic"
	BatteryIconCaution = "battery-caution-symbolic"
)

// Battery is the reduced battery state for display.
type Battery struct {
	Icon    string
	Tooltip string
}

// BatteryInfo polls upower for the first battery device. ok is false on a
// machine without a battery or when the tool is unavailable; the caller
// simply omits the indicator.
func BatteryInfo(exec action.Executor, command string) (Battery, bool) {
	devices, err := exec.Output([]string{command, "-e"})
	if err != nil {
		return Battery{}, false
	}
	device, ok := PickBatteryDevice(devices)
	if !ok {
		return Battery{}, false
	}

	info, err := exec.Output([]string{command, "-i", device})
	if err != nil {
		return Battery{}, false
	}
	return ParseBatteryInfo(info)
}

// PickBatteryDevice selects the first device path containing "battery" from
// upower -e output.
func PickBatteryDevice(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "battery") {
			return line, true
		}
	}
	return "", false
}

// ParseBatteryInfo reduces upower -i output to an icon and tooltip.
func ParseBatteryInfo(out string) (Battery, bool) {
	percentage := -1
	state := ""

	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "percentage":
			if p, err := strconv.Atoi(strings.TrimSuffix(value, "%")); err == nil {
				percentage = p
			}
		case "state":
			state = value
		}
	}

	if percentage < 0 {
		return Battery{}, false
	}

	var icon string
	switch {
	case percentage >= 90:
		icon = BatteryIconFull
	case percentage >= 60:
		icon = BatteryIconGood
	case percentage >= 30:
		icon = BatteryIconMedium
	case percentage >= 10:
		icon = BatteryIconLow
	default:
		icon = BatteryIconCaution
	}

	return Battery{
		Icon:    icon,
		Tooltip: fmt.Sprintf("Battery: %d%% (%s)", percentage, state),
	}, true
}
