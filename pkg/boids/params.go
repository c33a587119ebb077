package boids

import (
	"errors"
	"fmt"
)

// World and population constants.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultDepth  = 600.0

	MaxBoids     = 200
	MaxPredators = 5
	MaxObstacles = 20

	// Obstacle avoidance is not user tunable.
	DefaultObstacleRadius     = 30.0
	ObstacleDetectionRange    = 50.0
	ObstacleAvoidanceStrength = 0.5
)

// ErrUnknownParam is returned when a parameter name is not in the limits table.
var ErrUnknownParam = errors.New("unknown parameter")

// Params holds every tunable knob of a flock. The same struct drives 2D and
// 3D simulations; Depth is ignored in 2D.
type Params struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`

	NumBoids       int     `json:"num_boids"`
	VisualRange    float64 `json:"visual_range"`
	ProtectedRange float64 `json:"protected_range"`

	CohesionFactor     float64 `json:"cohesion_factor"`
	AlignmentFactor    float64 `json:"alignment_factor"`
	SeparationStrength float64 `json:"separation_strength"`

	MaxSpeed float64 `json:"max_speed"`
	MinSpeed float64 `json:"min_speed"`

	Margin     float64 `json:"margin"`
	TurnFactor float64 `json:"turn_factor"`

	PredatorEnabled           bool    `json:"predator_enabled"`
	NumPredators              int     `json:"num_predators"`
	PredatorSpeed             float64 `json:"predator_speed"`
	PredatorAvoidanceStrength float64 `json:"predator_avoidance_strength"`
	PredatorDetectionRange    float64 `json:"predator_detection_range"`
	PredatorHuntingStrength   float64 `json:"predator_hunting_strength"`
}

// DefaultParams returns the stock tuning: a mid-sized flock with no predators.
func DefaultParams() Params {
	return Params{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Depth:  DefaultDepth,

		NumBoids:       50,
		VisualRange:    50,
		ProtectedRange: 12,

		CohesionFactor:     0.002,
		AlignmentFactor:    0.06,
		SeparationStrength: 0.15,

		MaxSpeed: 3.0,
		MinSpeed: 2.0,

		Margin:     75,
		TurnFactor: 0.2,

		PredatorEnabled:           false,
		NumPredators:              1,
		PredatorSpeed:             2.5,
		PredatorAvoidanceStrength: 0.5,
		PredatorDetectionRange:    100,
		PredatorHuntingStrength:   0.05,
	}
}

// ParamLimit defines the valid range and UI metadata for one parameter.
type ParamLimit struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Default  float64 `json:"default"`
	Step     float64 `json:"step"`
	Category string  `json:"category"`
	Label    string  `json:"label"`
}

// Limits is the single source of truth for parameter ranges. Categories
// mirror how a front end would group the sliders.
var Limits = map[string]ParamLimit{
	"num_boids":           {1, 200, 50, 1, "primary", "Number of Boids"},
	"visual_range":        {10, 150, 50, 5, "primary", "Visual Range"},
	"separation_strength": {0.01, 0.5, 0.15, 0.01, "primary", "Separation Strength"},

	"predator_enabled":            {0, 1, 0, 1, "predator", "Predator Enabled"},
	"num_predators":               {0, MaxPredators, 1, 1, "predator", "Number of Predators"},
	"predator_speed":              {0.5, 5.0, 2.5, 0.1, "predator", "Predator Speed"},
	"predator_avoidance_strength": {0.05, 1.5, 0.5, 0.05, "predator", "Avoidance Strength"},

	"protected_range":           {2, 50, 12, 1, "advanced", "Protected Range"},
	"cohesion_factor":           {0.0001, 0.02, 0.002, 0.0005, "advanced", "Cohesion Factor"},
	"alignment_factor":          {0.01, 0.2, 0.06, 0.01, "advanced", "Alignment Factor"},
	"max_speed":                 {1.0, 8.0, 3.0, 0.5, "advanced", "Max Speed"},
	"min_speed":                 {0.5, 4.0, 2.0, 0.5, "advanced", "Min Speed"},
	"margin":                    {20, 150, 75, 5, "advanced", "Boundary Margin"},
	"turn_factor":               {0.05, 0.8, 0.2, 0.05, "advanced", "Turn Factor"},
	"predator_detection_range":  {30, 250, 100, 10, "advanced", "Detection Range"},
	"predator_hunting_strength": {0.01, 0.2, 0.05, 0.01, "advanced", "Hunting Strength"},
}

// ValidateParam checks a value against its limit.
func ValidateParam(name string, value float64) error {
	limit, ok := Limits[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	if value < limit.Min {
		return fmt.Errorf("%s must be >= %g, got %g", name, limit.Min, value)
	}
	if value > limit.Max {
		return fmt.Errorf("%s must be <= %g, got %g", name, limit.Max, value)
	}
	return nil
}

// ClampParam clamps a value to its limit. Unknown names pass through
// unchanged.
func ClampParam(name string, value float64) float64 {
	limit, ok := Limits[name]
	if !ok {
		return value
	}
	if value < limit.Min {
		return limit.Min
	}
	if value > limit.Max {
		return limit.Max
	}
	return value
}

// Clamped returns a copy of p with every limited field forced into range and
// the populations capped.
func (p Params) Clamped() Params {
	p.NumBoids = int(ClampParam("num_boids", float64(p.NumBoids)))
	p.VisualRange = ClampParam("visual_range", p.VisualRange)
	p.ProtectedRange = ClampParam("protected_range", p.ProtectedRange)
	p.CohesionFactor = ClampParam("cohesion_factor", p.CohesionFactor)
	p.AlignmentFactor = ClampParam("alignment_factor", p.AlignmentFactor)
	p.SeparationStrength = ClampParam("separation_strength", p.SeparationStrength)
	p.MaxSpeed = ClampParam("max_speed", p.MaxSpeed)
	p.MinSpeed = ClampParam("min_speed", p.MinSpeed)
	p.Margin = ClampParam("margin", p.Margin)
	p.TurnFactor = ClampParam("turn_factor", p.TurnFactor)
	p.NumPredators = int(ClampParam("num_predators", float64(p.NumPredators)))
	p.PredatorSpeed = ClampParam("predator_speed", p.PredatorSpeed)
	p.PredatorAvoidanceStrength = ClampParam("predator_avoidance_strength", p.PredatorAvoidanceStrength)
	p.PredatorDetectionRange = ClampParam("predator_detection_range", p.PredatorDetectionRange)
	p.PredatorHuntingStrength = ClampParam("predator_hunting_strength", p.PredatorHuntingStrength)
	return p
}
