// internal/protocol/command.go
package protocol

import "strings"

// Command is one operation of the DAC command family.
type Command int

const (
	Reset Command = iota
	Enable
	Disable
	SetGain
	SetReferenceMode
	SetValue
)

var commandNames = map[Command]string{
	Reset:            "RESET",
	Enable:           "ENABLE",
	Disable:          "DISABLE",
	SetGain:          "GAIN",
	SetReferenceMode: "VREF",
	SetValue:         "SET",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "UNKNOWN"
}

// ParseCommand maps a canonical command name to its Command.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToUpper(name)
	for c, n := range commandNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Transport selects the driver interface a command travels over.
type Transport int

const (
	// TransportIoctl commands are device-control requests.
	TransportIoctl Transport = iota

	// TransportWrite commands are plain writes of decimal text.
	TransportWrite
)

func (t Transport) String() string {
	if t == TransportWrite {
		return "write"
	}
	return "ioctl"
}
