package app

import (
	"time"

	"srboli-wheel/internal/entries"
)

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// ReloadMsg delivers a re-read of the watched names file.
type ReloadMsg entries.Reload
