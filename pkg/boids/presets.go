package boids

import (
	"fmt"
	"sort"
)

// Preset names.
const (
	PresetDefault       = "default"
	PresetTightSwarm    = "tight_swarm"
	PresetLooseCloud    = "loose_cloud"
	PresetHighSpeed     = "high_speed"
	PresetSlowDance     = "slow_dance"
	PresetPredatorChase = "predator_chase"
	PresetSwarmDefense  = "swarm_defense"
)

// presets maps preset names to a transform applied on top of DefaultParams.
var presets = map[string]func(*Params){
	PresetDefault: func(*Params) {},

	PresetTightSwarm: func(p *Params) {
		p.NumBoids = 100
		p.VisualRange = 80
		p.ProtectedRange = 8
		p.CohesionFactor = 0.008
		p.AlignmentFactor = 0.1
		p.SeparationStrength = 0.2
	},

	PresetLooseCloud: func(p *Params) {
		p.NumBoids = 75
		p.VisualRange = 120
		p.ProtectedRange = 25
		p.CohesionFactor = 0.0005
		p.AlignmentFactor = 0.03
		p.SeparationStrength = 0.08
	},

	PresetHighSpeed: func(p *Params) {
		p.NumBoids = 60
		p.MaxSpeed = 6.0
		p.MinSpeed = 4.0
		p.VisualRange = 60
		p.TurnFactor = 0.4
		p.AlignmentFactor = 0.12
	},

	PresetSlowDance: func(p *Params) {
		p.NumBoids = 40
		p.MaxSpeed = 1.5
		p.MinSpeed = 0.8
		p.VisualRange = 70
		p.CohesionFactor = 0.004
		p.AlignmentFactor = 0.08
		p.SeparationStrength = 0.1
	},

	PresetPredatorChase: func(p *Params) {
		p.NumBoids = 80
		p.PredatorEnabled = true
		p.PredatorSpeed = 3.0
		p.PredatorAvoidanceStrength = 0.8
		p.PredatorDetectionRange = 120
		p.PredatorHuntingStrength = 0.08
		p.MaxSpeed = 4.0
		p.MinSpeed = 2.5
	},

	PresetSwarmDefense: func(p *Params) {
		p.NumBoids = 120
		p.PredatorEnabled = true
		p.PredatorSpeed = 2.0
		p.PredatorAvoidanceStrength = 1.2
		p.PredatorDetectionRange = 150
		p.PredatorHuntingStrength = 0.03
		p.CohesionFactor = 0.006
		p.VisualRange = 70
		p.SeparationStrength = 0.12
	},
}

// Preset returns the parameters for a named preset.
func Preset(name string) (Params, error) {
	apply, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("unknown preset %q", name)
	}
	p := DefaultParams()
	apply(&p)
	return p, nil
}

// PresetOrDefault returns the named preset, falling back to the default
// tuning when the name is unknown.
func PresetOrDefault(name string) Params {
	p, err := Preset(name)
	if err != nil {
		return DefaultParams()
	}
	return p
}

// PresetNames lists all preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
