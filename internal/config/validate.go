// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/dacctl/internal/codec"
)

// Validate checks catalog correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil || len(cfg.Profiles) == 0 {
		return fmt.Errorf("config: at least one profile required")
	}

	names := make(map[string]struct{})

	for _, p := range cfg.Profiles {
		if p.Name == "" {
			return fmt.Errorf("config: profile name required")
		}
		if _, dup := names[p.Name]; dup {
			return fmt.Errorf("config: duplicate profile %q", p.Name)
		}
		names[p.Name] = struct{}{}

		if p.Path == "" {
			return fmt.Errorf("profile %q: path required", p.Name)
		}
		if len(p.Magic) != 1 || p.Magic[0] > 0x7F {
			return fmt.Errorf("profile %q: magic must be exactly one ASCII character, got %q", p.Name, p.Magic)
		}

		if err := validateCommands(p); err != nil {
			return err
		}
	}

	if cfg.DefaultProfile == "" {
		return fmt.Errorf("config: default_profile required")
	}
	if _, ok := names[cfg.DefaultProfile]; !ok {
		return fmt.Errorf("config: default_profile %q is not defined", cfg.DefaultProfile)
	}

	if cfg.LED.Count < 0 {
		return fmt.Errorf("led: count must be >= 0")
	}
	if cfg.LED.Count > 0 && (cfg.LED.Root == "" || cfg.LED.Attribute == "") {
		return fmt.Errorf("led: root and attribute required when count > 0")
	}

	return nil
}

func validateCommands(p ProfileConfig) error {
	if len(p.Commands) == 0 {
		return fmt.Errorf("profile %q: no commands", p.Name)
	}

	// key = upper-cased name or alias
	tokens := make(map[string]string)
	// key = opcode, ioctl rows only
	opcodes := make(map[uint8]string)

	for _, c := range p.Commands {
		name := strings.ToUpper(c.Name)
		if !knownCommand(name) {
			return fmt.Errorf("profile %q: unknown command %q", p.Name, c.Name)
		}

		for _, tok := range append([]string{c.Name}, c.Aliases...) {
			tok = strings.ToUpper(tok)
			if tok == "" {
				return fmt.Errorf("profile %q: command %q has an empty alias", p.Name, c.Name)
			}
			if prev, dup := tokens[tok]; dup {
				return fmt.Errorf("profile %q: token %q used by %s and %s", p.Name, tok, prev, name)
			}
			tokens[tok] = name
		}

		switch c.Transport {
		case TransportWrite:
			if name != "SET" {
				return fmt.Errorf("profile %q: command %s cannot use transport %q", p.Name, name, c.Transport)
			}
			if c.Direction != "" || c.Width != nil {
				return fmt.Errorf("profile %q: command %s: direction/width apply to ioctl rows only", p.Name, name)
			}
			continue

		case "", TransportIoctl:
			if name == "SET" {
				return fmt.Errorf("profile %q: SET must use transport %q", p.Name, TransportWrite)
			}

		default:
			return fmt.Errorf("profile %q: command %s: unknown transport %q", p.Name, name, c.Transport)
		}

		switch c.Direction {
		case DirectionNone:
			if c.Width != nil && *c.Width != 0 {
				return fmt.Errorf("profile %q: command %s: no-transfer width must be 0, got %d", p.Name, name, *c.Width)
			}
		case DirectionWrite:
			if c.Width != nil && *c.Width != codec.Int32Size {
				return fmt.Errorf("profile %q: command %s: write width must be %d, got %d", p.Name, name, codec.Int32Size, *c.Width)
			}
		default:
			return fmt.Errorf("profile %q: command %s: unknown direction %q", p.Name, name, c.Direction)
		}

		if prev, dup := opcodes[c.Opcode]; dup {
			return fmt.Errorf(
				"opcode collision: profile=%s opcode=%d used by %s and %s",
				p.Name,
				c.Opcode,
				prev,
				name,
			)
		}
		opcodes[c.Opcode] = name
	}

	return nil
}

func knownCommand(name string) bool {
	for _, n := range CommandNames {
		if n == name {
			return true
		}
	}
	return false
}
