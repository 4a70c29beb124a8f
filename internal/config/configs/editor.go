package configs

import "time"

// Editor configures the editor session registry.
type Editor struct {
	// SessionTTL is how long a session may stay untouched before the
	// registry discards it together with its unsaved edits.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	// MaxSessions caps the number of open sessions. Zero disables the cap.
	MaxSessions int `env:"MAX_SESSIONS" envDefault:"1000"`
}
