package config

import "time"

type Configer interface {
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKeyWithDefault(key string, defaultValue int) int
	GetDurationKeyWithDefault(key string, defaultValue time.Duration) time.Duration
	GetBoolKey(key string) bool
}

// Keys used by msweb.
const (
	KeyDotenvPath  = "MSWEB_DOTENV_PATH"
	KeyPort        = "MSWEB_PORT"
	KeyAPIURL      = "MSWEB_API_URL"
	KeyAPITimeout  = "MSWEB_API_TIMEOUT"
	KeyRedisAddr   = "MSWEB_REDIS_ADDR"
	KeyLogLevel    = "MSWEB_LOG_LEVEL"
	KeyDevIdentity = "MSWEB_DEV_IDENTITY"
)
