package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/brixaurea/land-schedule/internal/config"
	"github.com/brixaurea/land-schedule/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the schedule web UI.
type Config struct {
	Address       string `yaml:"address"`
	MaxUploadSize string `yaml:"maxUploadSize"`

	// DefaultDetail renders financing notes as per-installment rows for every
	// request that does not carry its own detail option.
	DefaultDetail bool `yaml:"defaultDetail"`

	Logging config.LoggingConfig `yaml:"logging"`

	uploadSizeBytes int64
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error so `-serve` works out of the box.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read server config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes returns the configured upload size in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := parseUploadSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	c.uploadSizeBytes = size
	c.MaxUploadSize = strconv.FormatInt(size, 10)
	return nil
}

// uploadSizeUnits is ordered longest suffix first so "KB" wins over "B".
var uploadSizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"B", 1},
}

// parseUploadSize converts a byte string like "256K" or "10MB" into bytes.
// Empty and non-positive values fall back to the default; deal configs are
// small YAML documents, so nothing beyond gigabytes is supported.
func parseUploadSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	multiplier := int64(1)
	for _, unit := range uploadSizeUnits {
		if rest, ok := strings.CutSuffix(trimmed, unit.suffix); ok {
			trimmed = strings.TrimSpace(rest)
			multiplier = unit.multiplier
			break
		}
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid upload size %q", value)
	}
	if n <= 0 {
		return constants.DefaultMaxUploadSizeBytes, nil
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("upload size %q overflows", value)
	}
	return n * multiplier, nil
}
