package geometry

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func TestRandomUnit(t *testing.T) {
	rng := newTestRand()

	t.Run("2D", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			u := RandomUnit[Vector2D](rng)
			if !floatEquals(u.Len(), 1.0) {
				t.Fatalf("RandomUnit length = %v; want 1", u.Len())
			}
		}
	})

	t.Run("3D", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			u := RandomUnit[Vector3D](rng)
			if !floatEquals(u.Len(), 1.0) {
				t.Fatalf("RandomUnit length = %v; want 1", u.Len())
			}
		}
	})
}

func TestRandomWithin(t *testing.T) {
	rng := newTestRand()
	lo := Vector3D{10, 20, 30}
	hi := Vector3D{11, 25, 60}

	for i := 0; i < 100; i++ {
		p := RandomWithin(rng, lo, hi)
		for a := 0; a < p.Axes(); a++ {
			if p.Axis(a) < lo.Axis(a) || p.Axis(a) > hi.Axis(a) {
				t.Fatalf("RandomWithin component %d = %v; want in [%v, %v]",
					a, p.Axis(a), lo.Axis(a), hi.Axis(a))
			}
		}
	}
}

func TestClamp(t *testing.T) {
	lo := Vector2D{0, 0}
	hi := Vector2D{800, 600}

	tests := []struct {
		name string
		in   Vector2D
		want Vector2D
	}{
		{"Inside", Vector2D{400, 300}, Vector2D{400, 300}},
		{"Below", Vector2D{-5, -10}, Vector2D{0, 0}},
		{"Above", Vector2D{900, 700}, Vector2D{800, 600}},
		{"Mixed", Vector2D{-1, 650}, Vector2D{0, 600}},
		{"OnEdge", Vector2D{0, 600}, Vector2D{0, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, lo, hi); !got.Eq(tt.want) {
				t.Errorf("Clamp(%v) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	v := Vector3D{1.5, -2.5, 3.25}
	c := Coords(v)
	if len(c) != 3 || c[0] != 1.5 || c[1] != -2.5 || c[2] != 3.25 {
		t.Errorf("Coords = %v; want [1.5 -2.5 3.25]", c)
	}
	back := FromCoords[Vector3D](c)
	if !back.Eq(v) {
		t.Errorf("FromCoords(Coords(v)) = %v; want %v", back, v)
	}

	// Short slices leave the remaining components zero.
	v2 := FromCoords[Vector3D]([]float64{4, 5})
	if !v2.Eq(Vector3D{4, 5, 0}) {
		t.Errorf("FromCoords short = %v; want (4, 5, 0)", v2)
	}
}
