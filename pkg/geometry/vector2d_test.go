package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector2D(t *testing.T) {
	v := NewVector2D(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector2D(1, 2) = %v; want (1, 2)", v)
	}
}

func TestNewVector2DPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 10, 0, Vector2D{10, 0}},
		{"90 degrees (Y-axis)", 10, math.Pi / 2, Vector2D{0, 10}},
		{"180 degrees (Negative X)", 10, math.Pi, Vector2D{-10, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVector2DPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVector2DPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector2D_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector2D_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Div", func(t *testing.T) {
		want := Vector2D{0.5, 1}
		got, err := v1.Div(2)
		if err != nil {
			t.Errorf("%v.Div(2) unexpected error: %v", v1, err)
		}
		if !got.Eq(want) {
			t.Errorf("%v.Div(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("DivByZero", func(t *testing.T) {
		got, err := v1.Div(0)
		if err == nil {
			t.Errorf("%v.Div(0) should have returned an error, got %v", v1, got)
		}
		if !math.IsInf(got.X, 0) || !math.IsInf(got.Y, 0) {
			t.Errorf("Div(0) should result in Inf coordinates, got %v", got)
		}
	})
}

func TestVector2D_Products(t *testing.T) {
	v1 := Vector2D{1, 0}
	v2 := Vector2D{0, 1}
	v3 := Vector2D{1, 1}

	t.Run("Dot", func(t *testing.T) {
		if got := v1.Dot(v2); got != 0 {
			t.Errorf("Dot orthogonal = %v; want 0", got)
		}
		if got := v1.Dot(Vector2D{2, 0}); got != 2 {
			t.Errorf("Dot parallel = %v; want 2", got)
		}
	})

	t.Run("Cross", func(t *testing.T) {
		if got := v1.Cross(v2); got != 1 {
			t.Errorf("Cross X,Y = %v; want 1", got)
		}
		if got := v3.Cross(v3); got != 0 {
			t.Errorf("Cross self = %v; want 0", got)
		}
	})
}

func TestVector2D_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		zero := Vector2D{0, 0}
		got := zero.Normalize()
		if !got.Eq(zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})
}

func TestVector2D_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector2D_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi},
		{Vector2D{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector2D_Rotate(t *testing.T) {
	v := Vector2D{1, 0}
	got := v.Rotate(math.Pi / 2)
	want := Vector2D{0, 1}
	if !got.Eq(want) {
		t.Errorf("Rotate(90) = %v; want %v", got, want)
	}
}

func TestVector2D_Lerp(t *testing.T) {
	v1 := Vector2D{0, 0}
	v2 := Vector2D{10, 10}
	got := v1.Lerp(v2, 0.5)
	want := Vector2D{5, 5}
	if !got.Eq(want) {
		t.Errorf("Lerp(0.5) = %v; want %v", got, want)
	}
}

func TestVector2D_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	vDiff := Vector2D{1.1, 2}
	if v.Eq(vDiff) {
		t.Error("Eq mismatch failed")
	}
}

func TestVector2D_Axes(t *testing.T) {
	v := Vector2D{3, 7}
	if v.Axes() != 2 {
		t.Errorf("Axes = %d; want 2", v.Axes())
	}
	if v.Axis(0) != 3 || v.Axis(1) != 7 {
		t.Errorf("Axis components = (%v, %v); want (3, 7)", v.Axis(0), v.Axis(1))
	}
	got := v.WithAxis(1, 9)
	if got != (Vector2D{3, 9}) {
		t.Errorf("WithAxis(1, 9) = %v; want (3, 9)", got)
	}
	if v.Y != 7 {
		t.Error("WithAxis mutated the receiver")
	}
}
