// internal/config/load.go
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var builtinProfiles []byte

var (
	defaultOnce sync.Once
	defaultCfg  *Config
	defaultErr  error
)

// Default returns the built-in catalog, parsed, validated and normalized once.
// Callers MUST NOT mutate the result.
func Default() (*Config, error) {
	defaultOnce.Do(func() {
		defaultCfg, defaultErr = Parse(builtinProfiles)
	})
	return defaultCfg, defaultErr
}

// Parse decodes a catalog document, then runs Validate and Normalize.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	Normalize(&cfg)

	return &cfg, nil
}

// Profile looks up a profile by name. Empty name selects the default profile.
func (c *Config) Profile(name string) (ProfileConfig, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return ProfileConfig{}, fmt.Errorf("config: unknown profile %q", name)
}
