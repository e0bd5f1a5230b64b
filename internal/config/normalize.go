// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/dacctl/internal/codec"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for pi := range cfg.Profiles {
		p := &cfg.Profiles[pi]

		for ci := range p.Commands {
			c := &p.Commands[ci]

			c.Name = strings.ToUpper(c.Name)
			for ai := range c.Aliases {
				c.Aliases[ai] = strings.ToUpper(c.Aliases[ai])
			}

			if c.Transport == "" {
				c.Transport = TransportIoctl
			}

			// Width is implied by direction when omitted.
			if c.Transport == TransportIoctl && c.Width == nil {
				w := uint16(0)
				if c.Direction == DirectionWrite {
					w = codec.Int32Size
				}
				c.Width = &w
			}
		}
	}
}
