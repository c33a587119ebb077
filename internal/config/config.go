// Package config loads and validates the application's JSON configuration.
// Per-parameter names and ranges come from the engine's limits table; the
// schema checks the file's shape.
package config

import (
	"encoding/json"
	_ "embed"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/codegithubka/boids-interactive/internal/session"
	"github.com/codegithubka/boids-interactive/pkg/boids"
)

//go:embed schema.json
var schemaJSON string

// Config selects a simulation mode, seed and preset, with optional
// per-parameter overrides keyed by the engine's parameter names.
type Config struct {
	Mode   string             `json:"mode"`
	Seed   uint64             `json:"seed"`
	Preset string             `json:"preset"`
	Params map[string]float64 `json:"params"`
}

// Default returns the stock configuration: a seeded 2D default flock.
func Default() *Config {
	return &Config{
		Mode:   session.Mode2D,
		Preset: boids.PresetDefault,
	}
}

// Load reads a JSON config file, validates it against the embedded schema
// and unmarshals it.
func Load(path string) (*Config, error) {
	sch, err := jsonschema.CompileString("schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// FlockParams resolves the configuration into engine parameters: the preset
// first, then each override validated against the limits table.
func (c *Config) FlockParams() (boids.Params, error) {
	p, err := boids.Preset(c.Preset)
	if err != nil {
		return boids.Params{}, err
	}
	for name, value := range c.Params {
		if err := boids.ValidateParam(name, value); err != nil {
			return boids.Params{}, fmt.Errorf("config override: %w", err)
		}
		applyParam(&p, name, value)
	}
	return p, nil
}

func applyParam(p *boids.Params, name string, value float64) {
	switch name {
	case "num_boids":
		p.NumBoids = int(value)
	case "visual_range":
		p.VisualRange = value
	case "protected_range":
		p.ProtectedRange = value
	case "cohesion_factor":
		p.CohesionFactor = value
	case "alignment_factor":
		p.AlignmentFactor = value
	case "separation_strength":
		p.SeparationStrength = value
	case "max_speed":
		p.MaxSpeed = value
	case "min_speed":
		p.MinSpeed = value
	case "margin":
		p.Margin = value
	case "turn_factor":
		p.TurnFactor = value
	case "predator_enabled":
		p.PredatorEnabled = value != 0
	case "num_predators":
		p.NumPredators = int(value)
	case "predator_speed":
		p.PredatorSpeed = value
	case "predator_avoidance_strength":
		p.PredatorAvoidanceStrength = value
	case "predator_detection_range":
		p.PredatorDetectionRange = value
	case "predator_hunting_strength":
		p.PredatorHuntingStrength = value
	}
}
