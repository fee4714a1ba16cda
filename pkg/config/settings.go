package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultPort       = "5173"
	DefaultAPIURL     = "http://127.0.0.1:8000"
	DefaultAPITimeout = 10 * time.Second
	DefaultLogLevel   = "info"
)

// Settings is the resolved server configuration.
type Settings struct {
	Port        string
	APITargets  []*url.URL
	APITimeout  time.Duration
	RedisAddr   string
	LogLevel    string
	DevIdentity bool
}

// APIURL is the backend the server side loaders talk to. Only the proxy balances
// across all targets.
func (s Settings) APIURL() string {
	return s.APITargets[0].String()
}

func LoadSettings(c Configer) (Settings, error) {
	s := Settings{
		Port:        c.GetKeyWithDefault(KeyPort, DefaultPort),
		APITimeout:  c.GetDurationKeyWithDefault(KeyAPITimeout, DefaultAPITimeout),
		RedisAddr:   c.GetKey(KeyRedisAddr),
		LogLevel:    c.GetKeyWithDefault(KeyLogLevel, DefaultLogLevel),
		DevIdentity: c.GetBoolKey(KeyDevIdentity),
	}

	for _, raw := range strings.Split(c.GetKeyWithDefault(KeyAPIURL, DefaultAPIURL), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		u, err := url.Parse(raw)
		if err != nil {
			return s, errors.Wrapf(err, "invalid %s entry %q", KeyAPIURL, raw)
		}

		if u.Scheme == "" || u.Host == "" {
			return s, errors.Errorf("invalid %s entry %q: need scheme and host", KeyAPIURL, raw)
		}

		s.APITargets = append(s.APITargets, u)
	}

	if len(s.APITargets) == 0 {
		return s, errors.Errorf("%s has no targets", KeyAPIURL)
	}

	return s, nil
}
