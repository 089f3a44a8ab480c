// Package config loads server and evaluation settings from JSON files.
// Fields omitted from a file keep their defaults, so partial configs are
// safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/streaminglabs/pmos"
)

// ServerConfig is the root configuration for pmos-server and pmos-eval.
// Pointer fields distinguish "absent" from zero values.
type ServerConfig struct {
	Listen       *string `json:"listen,omitempty"`        // HTTP listen address
	DBPath       *string `json:"db_path,omitempty"`       // SQLite database path
	DeviceClass  *int    `json:"device_class,omitempty"`  // default device for charts/eval
	PlayerWidth  *int    `json:"player_width,omitempty"`  // default player size
	PlayerHeight *int    `json:"player_height,omitempty"`
	ChartSamples *int    `json:"chart_samples,omitempty"` // points per chart curve
}

// Defaults used when a field is absent.
const (
	DefaultListen       = ":8080"
	DefaultDBPath       = "pmos.db"
	DefaultPlayerWidth  = 3840
	DefaultPlayerHeight = 2160
	DefaultChartSamples = 120
)

// Load reads a ServerConfig from a JSON file. The path must end in .json and
// the file must be under 1MB.
func Load(path string) (*ServerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &ServerConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges. Absent fields are valid.
func (c *ServerConfig) Validate() error {
	if c.Listen != nil && *c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.DBPath != nil && *c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.DeviceClass != nil {
		d := pmos.DeviceClass(*c.DeviceClass)
		if d < pmos.DeviceMobile || d > pmos.DeviceTV {
			return fmt.Errorf("device_class %d is not a built-in device", *c.DeviceClass)
		}
	}
	if c.PlayerWidth != nil && (*c.PlayerWidth < 1 || *c.PlayerWidth > 8192) {
		return fmt.Errorf("player_width %d out of range [1,8192]", *c.PlayerWidth)
	}
	if c.PlayerHeight != nil && (*c.PlayerHeight < 1 || *c.PlayerHeight > 8192) {
		return fmt.Errorf("player_height %d out of range [1,8192]", *c.PlayerHeight)
	}
	if c.ChartSamples != nil && (*c.ChartSamples < 2 || *c.ChartSamples > 10000) {
		return fmt.Errorf("chart_samples %d out of range [2,10000]", *c.ChartSamples)
	}
	return nil
}

// GetListen returns the listen address or its default.
func (c *ServerConfig) GetListen() string {
	if c != nil && c.Listen != nil {
		return *c.Listen
	}
	return DefaultListen
}

// GetDBPath returns the database path or its default.
func (c *ServerConfig) GetDBPath() string {
	if c != nil && c.DBPath != nil {
		return *c.DBPath
	}
	return DefaultDBPath
}

// GetDeviceClass returns the default device class (TV when absent).
func (c *ServerConfig) GetDeviceClass() pmos.DeviceClass {
	if c != nil && c.DeviceClass != nil {
		return pmos.DeviceClass(*c.DeviceClass)
	}
	return pmos.DeviceTV
}

// GetPlayerWidth returns the default player width.
func (c *ServerConfig) GetPlayerWidth() int {
	if c != nil && c.PlayerWidth != nil {
		return *c.PlayerWidth
	}
	return DefaultPlayerWidth
}

// GetPlayerHeight returns the default player height.
func (c *ServerConfig) GetPlayerHeight() int {
	if c != nil && c.PlayerHeight != nil {
		return *c.PlayerHeight
	}
	return DefaultPlayerHeight
}

// GetChartSamples returns the number of points per chart curve.
func (c *ServerConfig) GetChartSamples() int {
	if c != nil && c.ChartSamples != nil {
		return *c.ChartSamples
	}
	return DefaultChartSamples
}
