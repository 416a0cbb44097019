package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nas5gs/pkg/nas"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Decode DecodeConfig `yaml:"decode"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DecodeConfig struct {
	// DecipherAsPlain treats ciphered 5GMM content as plaintext, for
	// captures taken with the null ciphering algorithm.
	DecipherAsPlain bool `yaml:"decipher_as_plain"`
	// UserData labels opaque CIoT user-data containers: none, ipv4,
	// ipv6 or ethernet.
	UserData string `yaml:"user_data"`
	// MaxDepth bounds payload-container nesting; 0 keeps the default.
	MaxDepth int `yaml:"max_depth"`
}

type OutputConfig struct {
	// Format selects the rendering: json or json-indent.
	Format string `yaml:"format"`
}

var userDataKinds = map[string]nas.UserDataKind{
	"":         nas.UserDataNone,
	"none":     nas.UserDataNone,
	"ipv4":     nas.UserDataIPv4,
	"ipv6":     nas.UserDataIPv6,
	"ethernet": nas.UserDataEthernet,
}

// Policy maps the decode section onto the decoder's policy type.
func (d *DecodeConfig) Policy() nas.Policy {
	return nas.Policy{
		DecipherAsPlain: d.DecipherAsPlain,
		UserData:        userDataKinds[d.UserData],
		MaxDepth:        d.MaxDepth,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := userDataKinds[c.Decode.UserData]; !ok {
		return fmt.Errorf("decode.user_data must be one of none, ipv4, ipv6, ethernet")
	}
	if c.Decode.MaxDepth < 0 {
		return fmt.Errorf("decode.max_depth must not be negative")
	}
	switch c.Output.Format {
	case "", "json", "json-indent":
	default:
		return fmt.Errorf("output.format must be json or json-indent")
	}
	return nil
}
