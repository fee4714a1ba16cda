package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
)

// keys implements the typed getters on top of a raw lookup so every Configer
// parses values the same way.
type keys struct {
	lookup func(key string) string
}

func (k keys) GetKey(key string) string {
	return strings.TrimSpace(k.lookup(key))
}

func (k keys) MustGetKey(key string) string {
	val := k.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (k keys) GetKeyWithDefault(key, defaultValue string) string {
	val := k.GetKey(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func (k keys) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(k.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}

func (k keys) GetDurationKeyWithDefault(key string, defaultValue time.Duration) time.Duration {
	val := k.GetKey(key)
	if val == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warnf("Config key '%s' is not a duration (%q), using %s", key, val, defaultValue)
		return defaultValue
	}

	return d
}

func (k keys) GetBoolKey(key string) bool {
	b, err := strconv.ParseBool(k.GetKey(key))
	if err != nil {
		return false
	}

	return b
}
