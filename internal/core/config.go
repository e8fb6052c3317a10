package core

// RuntimeConfig contains per-session settings handed to frontends.
// Frontends use it to size their surface and to seed world generation.
type RuntimeConfig struct {
	ScreenW  int    // Window width (pixels or terminal columns)
	ScreenH  int    // Window height (pixels or terminal rows)
	TickRate int    // Frames per second (default 60)
	Seed     int64  // RNG seed for world generation, 0 = time based
	Player   string // Name recorded in the journal
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Player:   "wanderer",
	}
}
