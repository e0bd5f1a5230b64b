// internal/config/config.go
package config

type Config struct {
	DefaultProfile string          `yaml:"default_profile"`
	Profiles       []ProfileConfig `yaml:"profiles"`
	LED            LEDConfig       `yaml:"led"`
}

// ---- PROFILE (one driver generation) ----

type ProfileConfig struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Path        string          `yaml:"path"`
	Magic       string          `yaml:"magic"` // exactly one ASCII character
	Commands    []CommandConfig `yaml:"commands"`
}

// ---- COMMAND ROW ----

type CommandConfig struct {
	Name      string   `yaml:"name"`
	Aliases   []string `yaml:"aliases"`
	Transport string   `yaml:"transport"` // "ioctl" (default) | "write"
	Direction string   `yaml:"direction"` // "none" | "write"; ioctl rows only
	Opcode    uint8    `yaml:"opcode"`
	Width     *uint16  `yaml:"width"` // payload bytes; write rows default to 4
}

// ---- LED ----

type LEDConfig struct {
	Root      string `yaml:"root"`
	Attribute string `yaml:"attribute"`
	Count     int    `yaml:"count"`
}

// Transport and direction vocabulary.
const (
	TransportIoctl = "ioctl"
	TransportWrite = "write"

	DirectionNone  = "none"
	DirectionWrite = "write"
)

// Command names understood by the protocol layer.
var CommandNames = []string{"RESET", "ENABLE", "DISABLE", "GAIN", "VREF", "SET"}
