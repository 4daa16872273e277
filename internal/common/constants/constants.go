package constants

import "time"

const (
	DefaultHTTPPort   = "8000"
	DefaultCORSOrigin = "http://localhost:5173"

	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxRequestSize = 1 << 20

	TokenSuffix = "_token"

	RateLimitLoginRequestsPerSecond    = 1.0
	RateLimitLoginBurst                = 5
	RateLimitRegisterRequestsPerSecond = 1.0
	RateLimitRegisterBurst             = 3
	RateLimitGeneralRequestsPerSecond  = 20.0
	RateLimitGeneralBurst              = 40

	RateLimitCleanupInterval = 5 * time.Minute

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
