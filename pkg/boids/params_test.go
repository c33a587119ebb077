package boids

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.NumBoids != 50 {
		t.Errorf("NumBoids = %d; want 50", p.NumBoids)
	}
	if p.VisualRange != 50 || p.ProtectedRange != 12 {
		t.Errorf("ranges = %v/%v; want 50/12", p.VisualRange, p.ProtectedRange)
	}
	if p.MaxSpeed != 3.0 || p.MinSpeed != 2.0 {
		t.Errorf("speeds = %v/%v; want 3/2", p.MaxSpeed, p.MinSpeed)
	}
	if p.PredatorEnabled {
		t.Error("predator should be disabled by default")
	}

	// Every limited parameter's default must sit inside its own range.
	for name, limit := range Limits {
		if limit.Default < limit.Min || limit.Default > limit.Max {
			t.Errorf("%s: default %v outside [%v, %v]", name, limit.Default, limit.Min, limit.Max)
		}
	}
}

func TestValidateParam(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"visual_range", 50, false},
		{"visual_range", 10, false},
		{"visual_range", 150, false},
		{"visual_range", 9, true},
		{"visual_range", 151, true},
		{"num_boids", 0, true},
		{"num_boids", 201, true},
		{"cohesion_factor", 0.002, false},
		{"cohesion_factor", 0.5, true},
		{"turn_factor", 0.05, false},
	}
	for _, tt := range tests {
		err := ValidateParam(tt.name, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateParam(%q, %v) error = %v; wantErr %v", tt.name, tt.value, err, tt.wantErr)
		}
	}

	if err := ValidateParam("no_such_knob", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("unknown name error = %v; want ErrUnknownParam", err)
	}
}

func TestClampParam(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"visual_range", 50, 50},
		{"visual_range", 5, 10},
		{"visual_range", 999, 150},
		{"min_speed", -1, 0.5},
		{"max_speed", 100, 8},
		{"no_such_knob", 42, 42},
	}
	for _, tt := range tests {
		if got := ClampParam(tt.name, tt.value); got != tt.want {
			t.Errorf("ClampParam(%q, %v) = %v; want %v", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestParamsClamped(t *testing.T) {
	p := DefaultParams()
	p.NumBoids = 9999
	p.VisualRange = 1
	p.MaxSpeed = 100
	p.NumPredators = 50
	p.TurnFactor = -3

	c := p.Clamped()
	if c.NumBoids != MaxBoids {
		t.Errorf("NumBoids = %d; want %d", c.NumBoids, MaxBoids)
	}
	if c.VisualRange != 10 {
		t.Errorf("VisualRange = %v; want 10", c.VisualRange)
	}
	if c.MaxSpeed != 8 {
		t.Errorf("MaxSpeed = %v; want 8", c.MaxSpeed)
	}
	if c.NumPredators != MaxPredators {
		t.Errorf("NumPredators = %d; want %d", c.NumPredators, MaxPredators)
	}
	if c.TurnFactor != 0.05 {
		t.Errorf("TurnFactor = %v; want 0.05", c.TurnFactor)
	}

	// In-range values pass through untouched.
	d := DefaultParams()
	if got := d.Clamped(); !reflect.DeepEqual(got, d) {
		t.Errorf("Clamped changed in-range params: %+v", got)
	}
}

func TestPresets(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		p, err := Preset(PresetDefault)
		if err != nil {
			t.Fatalf("Preset(default): %v", err)
		}
		if !reflect.DeepEqual(p, DefaultParams()) {
			t.Error("default preset should equal DefaultParams")
		}
	})

	t.Run("TightSwarm", func(t *testing.T) {
		p, err := Preset(PresetTightSwarm)
		if err != nil {
			t.Fatalf("Preset(tight_swarm): %v", err)
		}
		if p.NumBoids != 100 || p.VisualRange != 80 || p.CohesionFactor != 0.008 {
			t.Errorf("tight_swarm tuning wrong: %+v", p)
		}
	})

	t.Run("PredatorChase", func(t *testing.T) {
		p, err := Preset(PresetPredatorChase)
		if err != nil {
			t.Fatalf("Preset(predator_chase): %v", err)
		}
		if !p.PredatorEnabled {
			t.Error("predator_chase must enable the predator")
		}
		if p.PredatorSpeed != 3.0 || p.PredatorHuntingStrength != 0.08 || p.MaxSpeed != 4.0 {
			t.Errorf("predator_chase tuning wrong: %+v", p)
		}
	})

	t.Run("SwarmDefense", func(t *testing.T) {
		p, err := Preset(PresetSwarmDefense)
		if err != nil {
			t.Fatalf("Preset(swarm_defense): %v", err)
		}
		if p.NumBoids != 120 || p.PredatorAvoidanceStrength != 1.2 || p.PredatorDetectionRange != 150 {
			t.Errorf("swarm_defense tuning wrong: %+v", p)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := Preset("turbo"); err == nil {
			t.Error("unknown preset should error")
		}
		if !reflect.DeepEqual(PresetOrDefault("turbo"), DefaultParams()) {
			t.Error("PresetOrDefault should fall back to defaults")
		}
	})

	t.Run("AllWithinLimits", func(t *testing.T) {
		for _, name := range PresetNames() {
			p, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset(%s): %v", name, err)
			}
			if !reflect.DeepEqual(p, p.Clamped()) {
				t.Errorf("preset %s has out-of-range values", name)
			}
		}
	})
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != 7 {
		t.Fatalf("got %d presets; want 7", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
