package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	RetryMaxAttempts  = 3
	RetryInitialDelay = 500 * time.Millisecond
)

const (
	TopMasteryCount     = 5
	RecentMatchCount    = 20
	MatchDetailFanout   = 5
	MatchDetailParallel = 3
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBCacheSizeKB     = 64000
	DBBusyTimeout     = 5 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SearchSuggestionLimit = 10
)
