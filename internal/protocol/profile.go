// internal/protocol/profile.go
package protocol

import (
	"sort"
	"strings"

	"github.com/tamzrod/dacctl/internal/ioc"
)

// Spec is one row of a driver generation's command table.
type Spec struct {
	Command   Command
	Aliases   []string
	Transport Transport
	Direction ioc.Direction
	Width     uint16
	Opcode    uint8

	// Request is precomputed at build time. Zero for TransportWrite rows.
	Request ioc.Request
}

// Arity is the number of arguments the command takes on the command line.
func (s Spec) Arity() int {
	if s.Transport == TransportWrite || s.Direction == ioc.WriteToDevice {
		return 1
	}
	return 0
}

// Profile is the immutable command table of one driver generation.
type Profile struct {
	Name        string
	Description string
	Path        string
	Magic       byte

	specs  map[Command]Spec
	tokens map[string]Command
}

// Spec returns the row for cmd, if this generation supports it.
func (p *Profile) Spec(cmd Command) (Spec, bool) {
	s, ok := p.specs[cmd]
	return s, ok
}

// Request returns the encoded device-control word for cmd.
// False for commands the generation lacks and for plain-write commands.
func (p *Profile) Request(cmd Command) (ioc.Request, bool) {
	s, ok := p.specs[cmd]
	if !ok || s.Transport != TransportIoctl {
		return 0, false
	}
	return s.Request, true
}

// Lookup resolves a command-line token (name or alias, any case).
func (p *Profile) Lookup(token string) (Spec, bool) {
	cmd, ok := p.tokens[strings.ToUpper(token)]
	if !ok {
		return Spec{}, false
	}
	return p.specs[cmd], true
}

// Specs lists the rows in Command order.
func (p *Profile) Specs() []Spec {
	out := make([]Spec, 0, len(p.specs))
	for _, s := range p.specs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Command < out[j].Command })
	return out
}
