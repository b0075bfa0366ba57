package ftracker

import (
	"encoding/json"
	"fmt"
	"io"
)

// Package is a single batch of raw sensor data
type Package struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

type Config struct {
	Packages []*Package `json:"packages"`
}

// NewConfig decodes a json configuration
func NewConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
