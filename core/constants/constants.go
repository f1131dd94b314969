package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// User roles
const (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// Database tuning
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyRateLimit      = "ratelimit:"
)

// Booking rules
const (
	CancellationCutoff = 24 * time.Hour
)

// Booking phases
const (
	PhaseClosed   = 0
	PhasePriority = 1
	PhaseOpen     = 2
)

// Asynq task types
const (
	TaskEmailCredentials      = "email:credentials"
	TaskEmailBookingConfirmed = "email:booking_confirmed"
	TaskEmailBookingCancelled = "email:booking_cancelled"
)
