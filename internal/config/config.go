package config

import "time"

const (
	// Wheel display
	AspectRatio     = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	WheelFillFrac   = 0.95 // Share of the panel the wheel radius may use
	RimWidth        = 0.55 // Rim half-thickness in cells
	MaxLabelLen     = 10   // Labels are truncated to this many runes
	PointerGapRows  = 1    // Rows between the rim and the pointer
	TargetFPS       = 30   // Target frames per second

	// Spin defaults (overridable by the settings file)
	MinFullSpins   = 3
	MaxFullSpins   = 6
	BaseDuration   = 6 * time.Second
	DurationJitter = 2 * time.Second
	EdgeMargin     = 0.1
	DefaultEasing  = "easeOutCubic"
	DefaultWeight  = 1.0

	// Entries
	HistorySize    = 8                      // Recent winners kept for the status panel
	ReloadDebounce = 150 * time.Millisecond // Coalesce editor write bursts on watched files

	// Headless spin
	HeadlessFrame = time.Second / TargetFPS

	// App
	AppName    = "SRBOLI-WHEEL"
	AppVersion = "1.0"
)
