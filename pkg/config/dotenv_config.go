package config

import (
	"os"

	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

// DotenvConfig reads the process environment after optionally loading a dotenv file
// into it. Variables already set in the environment win over the file.
type DotenvConfig struct {
	keys
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{keys: keys{lookup: os.Getenv}, DotenvPath: path}
}

// Load loads DotenvPath. A blank path or a file that doesn't exist is not an error,
// msweb runs fine from the environment alone.
func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	path, err := homedir.Expand(c.DotenvPath)
	if err != nil {
		return errors.Wrapf(err, "unable to expand dotenv path %s", c.DotenvPath)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Warnf("Dotenv file %s does not exist, using environment only", path)
		return nil
	}

	if err := gotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed loading dotenv file %s", path)
	}

	return nil
}
