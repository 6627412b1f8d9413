package aoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigFile is read from the working directory if present.
const DefaultConfigFile = "aoc.json"

// Config holds the settings shared by all puzzle programs.
type Config struct {
	// Inputs is the directory holding <day>/input.txt.
	Inputs string `json:"inputs"`
	Debug  bool   `json:"debug"`
}

func defaultConfig() Config {
	return Config{
		Inputs: DefaultInputDir,
	}
}

// LoadConfig loads configuration from path. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Inputs = strings.TrimSpace(cfg.Inputs)
	if cfg.Inputs == "" {
		cfg.Inputs = DefaultInputDir
	}
	return cfg, nil
}

// InputPath is the package InputPath rooted at c.Inputs.
func (c Config) InputPath(day int, file string) string {
	return inputPath(c.Inputs, day, file)
}
