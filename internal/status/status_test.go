package status

import (
	"fmt"
	"testing"
)

// scriptedExec serves canned output per leading argv token sequence.
type scriptedExec struct {
	outputs map[string]string
	err     error
}

func (s *scriptedExec) Execute(argv []string) {}

func (s *scriptedExec) Output(argv []string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	key := fmt.Sprintf("%v", argv)
	out, ok := s.outputs[key]
	if !ok {
		return "", fmt.Errorf("unexpected command %v", argv)
	}
	return out, nil
}

func TestParseVolumeIcon_Bands(t *testing.T) {
	cases := map[string]string{
		"Volume: 0.00":         VolumeIconMuted,
		"Volume: 0.20":         VolumeIconLow,
		"Volume: 0.50":         VolumeIconMedium,
		"Volume: 0.90":         VolumeIconHigh,
		"Volume: 1.00":         VolumeIconHigh,
		"Volume: 0.55 [MUTED]": VolumeIconMuted,
		"":                     VolumeIconMuted,
		"garbage output":       VolumeIconMuted,
	}
	for out, want := range cases {
		if got := ParseVolumeIcon(out); got != want {
			t.Fatalf("ParseVolumeIcon(%q): expected %q, got %q", out, want, got)
		}
	}
}

func TestVolumeIcon_ToolFailureReadsMuted(t *testing.T) {
	exec := &scriptedExec{err: fmt.Errorf("wpctl not found")}
	if got := VolumeIcon(exec, "wpctl"); got != VolumeIconMuted {
		t.Fatalf("expected muted on tool failure, got %q", got)
	}
}

func TestPickBatteryDevice(t *testing.T) {
	out := "/org/freedesktop/UPower/devices/line_power_AC\n/org/freedesktop/UPower/devices/battery_BAT0\n"
	device, ok := PickBatteryDevice(out)
	if !ok || device != "/org/freedesktop/UPower/devices/battery_BAT0" {
		t.Fatalf("expected battery device, got %q ok=%v", device, ok)
	}

	if _, ok := PickBatteryDevice("/org/freedesktop/UPower/devices/line_power_AC\n"); ok {
		t.Fatalf("expected no battery on desktop output")
	}
}

func TestParseBatteryInfo_IconBands(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, BatteryIconFull},
		{90, BatteryIconFull},
		{75, BatteryIconGood},
		{45, BatteryIconMedium},
		{15, BatteryIconLow},
		{5, BatteryIconCaution},
	}
	for _, tc := range cases {
		out := fmt.Sprintf("  state:               discharging\n  percentage:          %d%%\n", tc.percentage)
		b, ok := ParseBatteryInfo(out)
		if !ok {
			t.Fatalf("percentage %d: expected ok", tc.percentage)
		}
		if b.Icon != tc.want {
			t.Fatalf("percentage %d: expected %q, got %q", tc.percentage, tc.want, b.Icon)
		}
	}
}

func TestParseBatteryInfo_Tooltip(t *testing.T) {
	out := "  state:               charging\n  percentage:          82%\n"
	b, ok := ParseBatteryInfo(out)
	if !ok {
		t.Fatalf("expected ok")
	}
	if b.Tooltip != "Battery: 82% (charging)" {
		t.Fatalf("unexpected tooltip %q", b.Tooltip)
	}
}

func TestParseBatteryInfo_NoPercentage(t *testing.T) {
	if _, ok := ParseBatteryInfo("  state: charging\n"); ok {
		t.Fatalf("expected failure without a percentage")
	}
}

func TestBatteryInfo_EndToEnd(t *testing.T) {
	exec := &scriptedExec{outputs: map[string]string{
		"[upower -e]": "/org/freedesktop/UPower/devices/battery_BAT0\n",
		"[upower -i /org/freedesktop/UPower/devices/battery_BAT0]": "  state:               discharging\n  percentage:          63%\n",
	}}

	b, ok := BatteryInfo(exec, "upower")
	if !ok {
		t.Fatalf("expected battery info")
	}
	if b.Icon != BatteryIconGood {
		t.Fatalf("expected %q, got %q", BatteryIconGood, b.Icon)
	}
}
