// internal/protocol/builder.go
package protocol

import (
	"fmt"
	"sort"

	cfg "github.com/tamzrod/dacctl/internal/config"
	"github.com/tamzrod/dacctl/internal/ioc"
)

// Build converts one validated, normalized profile row set into a Profile.
// Request words are computed here, once.
func Build(pc cfg.ProfileConfig) (*Profile, error) {
	if len(pc.Magic) != 1 {
		return nil, fmt.Errorf("protocol: profile %q: bad magic %q", pc.Name, pc.Magic)
	}

	p := &Profile{
		Name:        pc.Name,
		Description: pc.Description,
		Path:        pc.Path,
		Magic:       pc.Magic[0],
		specs:       make(map[Command]Spec, len(pc.Commands)),
		tokens:      make(map[string]Command),
	}

	for _, c := range pc.Commands {
		cmd, ok := ParseCommand(c.Name)
		if !ok {
			return nil, fmt.Errorf("protocol: profile %q: unknown command %q", pc.Name, c.Name)
		}

		s := Spec{
			Command: cmd,
			Aliases: c.Aliases,
			Opcode:  c.Opcode,
		}

		switch c.Transport {
		case cfg.TransportWrite:
			s.Transport = TransportWrite

		default:
			s.Transport = TransportIoctl
			if c.Direction == cfg.DirectionWrite {
				s.Direction = ioc.WriteToDevice
			}
			if c.Width != nil {
				s.Width = *c.Width
			}
			s.Request = ioc.Encode(s.Direction, p.Magic, s.Opcode, s.Width)
		}

		p.specs[cmd] = s
		p.tokens[cmd.String()] = cmd
		for _, a := range c.Aliases {
			p.tokens[a] = cmd
		}
	}

	return p, nil
}

// Catalog is the set of driver generations resolved at startup.
type Catalog struct {
	Default  string
	profiles map[string]*Profile
}

// BuildCatalog builds every profile of a validated configuration.
func BuildCatalog(c *cfg.Config) (*Catalog, error) {
	cat := &Catalog{
		Default:  c.DefaultProfile,
		profiles: make(map[string]*Profile, len(c.Profiles)),
	}
	for _, pc := range c.Profiles {
		p, err := Build(pc)
		if err != nil {
			return nil, err
		}
		cat.profiles[p.Name] = p
	}
	return cat, nil
}

// Profile returns the named generation; empty name selects the default.
func (c *Catalog) Profile(name string) (*Profile, error) {
	if name == "" {
		name = c.Default
	}
	p, ok := c.profiles[name]
	if !ok {
		return nil, fmt.Errorf("protocol: unknown profile %q", name)
	}
	return p, nil
}

// Names lists the generation names.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.profiles))
	for n := range c.profiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// DefaultCatalog builds the compiled-in driver generations.
func DefaultCatalog() (*Catalog, error) {
	c, err := cfg.Default()
	if err != nil {
		return nil, err
	}
	return BuildCatalog(c)
}
