// Package config loads the oneasm configuration file.
package config

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	pkgerrors "github.com/pkg/errors"
)

// DEFAULT_FILE is the configuration file read from the working directory
// when no file is named.
const DEFAULT_FILE = "oneasm.toml"

// Config holds the assembler command settings.
type Config struct {
	Verbose   bool   `toml:"verbose"`    // Log each source line as it is assembled.
	Force     bool   `toml:"force"`      // Overwrite existing output images.
	CodeExt   string `toml:"code_ext"`   // Extension of the machine code image.
	DataExt   string `toml:"data_ext"`   // Extension of the data image.
	OutputDir string `toml:"output_dir"` // Directory of the output images, or "" for alongside the source.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		CodeExt: ".mc",
		DataExt: ".dat",
	}
}

// Load reads a configuration file over the defaults. If path is empty,
// DEFAULT_FILE is read if it exists.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	optional := false
	if len(path) == 0 {
		path = DEFAULT_FILE
		optional = true
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			err = nil
			return
		}
		err = pkgerrors.Wrapf(err, "config %v", path)
		cfg = nil
		return
	}

	undecoded := md.Undecoded()
	if len(undecoded) != 0 {
		err = pkgerrors.Errorf("config %v: unknown keys %v", path, undecoded)
		cfg = nil
		return
	}

	return
}

// Outputs returns the names of the machine code and data images for a
// source file, given an optional base name override. A directory named in
// base takes precedence over OutputDir.
func (cfg *Config) Outputs(source string, base string) (dir, code, data string) {
	explicit := len(base) != 0
	if !explicit {
		base = strings.TrimSuffix(source, filepath.Ext(source))
	}

	dir, name := filepath.Split(base)
	if len(cfg.OutputDir) != 0 && !(explicit && len(dir) != 0) {
		dir = cfg.OutputDir
	}
	if len(dir) == 0 {
		dir = "."
	}

	code = name + cfg.CodeExt
	data = name + cfg.DataExt
	return
}

// Write writes the configuration as TOML.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
