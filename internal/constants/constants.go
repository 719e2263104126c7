package constants

import "time"

const (
	AppName            = "blossom"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/blossom/blossom.yaml"
	DefaultDatabase    = "~/.config/blossom/blossom.db"
	Version            = "v0.2.0"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultTimezone is the reference timezone that calendar days are
	// normalized to unless overridden in the server config
	DefaultTimezone = "UTC"

	// SessionCookie is the name of the HTTP session cookie
	SessionCookie = "blossom_session"

	// DefaultSessionTTL is how long a login session stays valid
	DefaultSessionTTL = 24 * time.Hour

	// ConsistencyLookbackDays bounds how far back the streak walk scans
	ConsistencyLookbackDays = 30

	// RecentMeditationLimit caps the recently-played list
	RecentMeditationLimit = 5
)
