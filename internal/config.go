package internal

import "time"

type Config struct {
	Host      string `env:"HOST,required=true"`
	Port      int    `env:"PORT,required=true"`
	DebugPort int    `env:"DEBUG_PORT,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	EventBufferSize   int           `env:"EVENT_BUFFER_SIZE,required=true"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	// Comma-separated user IDs granted each tier at boot. Stand-in for
	// the subscription service in single-process deployments.
	PremiumUsers   []string `env:"PREMIUM_USERS"`
	DeveloperUsers []string `env:"DEVELOPER_USERS"`
}
