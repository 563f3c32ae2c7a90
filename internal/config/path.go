package config

import (
	"strings"

	"github.com/adrg/xdg"
)

// ResolvePath applies CLI/XDG fallback rules for the config.conf location.
func ResolvePath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}
	return xdg.ConfigFile("sinkswitch/config.conf")
}
