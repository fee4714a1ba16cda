package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapConfigGetters(t *testing.T) {
	c := NewMapConfig(map[string]string{
		"STR":      " value ",
		"INT":      "42",
		"BAD_INT":  "forty-two",
		"DURATION": "250ms",
		"BOOL":     "true",
	})

	assert.Equal(t, "value", c.GetKey("STR"))
	assert.Equal(t, "dflt", c.GetKeyWithDefault("MISSING", "dflt"))
	assert.Equal(t, 42, c.GetIntKeyWithDefault("INT", 1))
	assert.Equal(t, 1, c.GetIntKeyWithDefault("BAD_INT", 1))
	assert.Equal(t, 250*time.Millisecond, c.GetDurationKeyWithDefault("DURATION", time.Second))
	assert.Equal(t, time.Second, c.GetDurationKeyWithDefault("STR", time.Second))
	assert.True(t, c.GetBoolKey("BOOL"))
	assert.False(t, c.GetBoolKey("MISSING"))

	c.Set("MISSING", "now set")
	assert.Equal(t, "now set", c.GetKey("MISSING"))
}

func TestDotenvConfigLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MSWEB_TEST_DOTENV_KEY=from-file\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("MSWEB_TEST_DOTENV_KEY") })

	c := NewDotenvConfig(path)
	require.NoError(t, c.Load())
	assert.Equal(t, "from-file", c.GetKey("MSWEB_TEST_DOTENV_KEY"))
}

func TestDotenvConfigMissingFileIsNotAnError(t *testing.T) {
	c := NewDotenvConfig(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, c.Load())
	assert.NoError(t, NewDotenvConfig("").Load())
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(NewMapConfig(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, s.Port)
	assert.Equal(t, DefaultAPIURL, s.APIURL())
	assert.Equal(t, DefaultAPITimeout, s.APITimeout)
	assert.Equal(t, "", s.RedisAddr)
	assert.False(t, s.DevIdentity)

	s, err = LoadSettings(NewMapConfig(map[string]string{
		KeyAPIURL:      "http://a:8000, http://b:8000",
		KeyAPITimeout:  "3s",
		KeyDevIdentity: "1",
	}))
	require.NoError(t, err)
	require.Len(t, s.APITargets, 2)
	assert.Equal(t, "b:8000", s.APITargets[1].Host)
	assert.Equal(t, 3*time.Second, s.APITimeout)
	assert.True(t, s.DevIdentity)

	_, err = LoadSettings(NewMapConfig(map[string]string{KeyAPIURL: "not-a-url"}))
	assert.Error(t, err)
}
