package config

import (
	"errors"
	"fmt"
	"os"
)

// Loaded is the outcome of config resolution: where the file was looked up,
// the effective values, and anything worth telling the user about.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load materializes the runtime configuration. A missing file is not an
// error: the built-in device pair stays in effect and a warning records the
// path that was tried.
func Load(explicitPath string) (Loaded, error) {
	path, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Loaded{
			Path:   path,
			Config: Default(),
			Warnings: []Warning{{
				Message: fmt.Sprintf("no config at %q; toggling the built-in device pair", path),
			}},
		}, nil
	case err != nil:
		return Loaded{}, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, warnings, err := Parse(string(content), Default())
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	return Loaded{
		Path:     path,
		Config:   cfg,
		Warnings: warnings,
		Exists:   true,
	}, nil
}
