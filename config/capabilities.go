package config

// Capabilities records which optional platform services came up at startup.
// It is resolved once before the game loop starts and never changes afterwards.
type Capabilities struct {
	FontsAvailable bool
	AudioAvailable bool
}
