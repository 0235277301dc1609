package constants

import "time"

const (
	RequestTimeout   = 30 * time.Second
	DatabaseTimeout  = 5 * time.Second
	NarrationTimeout = 10 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	RosterSearchLimit   = 25
	SegmentHistoryLimit = 50
)
