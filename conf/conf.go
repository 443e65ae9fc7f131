// Package conf reads the optional `.json-dirtree.toml` rc file.
package conf

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Name is the rc file json-dirtree looks for in the working directory.
const Name = ".json-dirtree.toml"

// Config carries defaults the rc file can set. Flags beat rc values.
type Config struct {
	// OutDir is the default output directory for build
	OutDir string `toml:"out_dir"`

	// Hidden includes dot-prefixed entries by default
	Hidden bool `toml:"hidden"`

	// Ignore extends the built-in ignored name patterns
	Ignore []string `toml:"ignore"`
}

// Load reads the rc file from dir.
// Returns a nil config if there isn't an rc file in dir. Returns an
// error if there is a file, but it can't be read, for example because
// of permission errors or invalid TOML markup.
func Load(dir string) (*Config, error) {
	rcPath := filepath.Join(dir, Name)
	f, err := os.Open(rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			// no rc file!
			return nil, nil
		}
		return nil, errors.Wrap(err, "opening rc file")
	}

	defer f.Close()

	cfg := &Config{}
	if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing rc file")
	}

	return cfg, nil
}
