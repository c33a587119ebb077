package geometry

import (
	"math"
	"testing"
)

func TestVector3D_Arithmetic(t *testing.T) {
	v1 := Vector3D{1, 2, 3}
	v2 := Vector3D{4, 5, 6}

	t.Run("Add", func(t *testing.T) {
		want := Vector3D{5, 7, 9}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector3D{-3, -3, -3}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector3D{2, 4, 6}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("DivByZero", func(t *testing.T) {
		got, err := v1.Div(0)
		if err == nil {
			t.Errorf("%v.Div(0) should have returned an error, got %v", v1, got)
		}
		if !math.IsInf(got.Z, 0) {
			t.Errorf("Div(0) should result in Inf coordinates, got %v", got)
		}
	})
}

func TestVector3D_Products(t *testing.T) {
	x := Vector3D{1, 0, 0}
	y := Vector3D{0, 1, 0}
	z := Vector3D{0, 0, 1}

	t.Run("Dot", func(t *testing.T) {
		if got := x.Dot(y); got != 0 {
			t.Errorf("Dot orthogonal = %v; want 0", got)
		}
		if got := x.Dot(Vector3D{2, 0, 0}); got != 2 {
			t.Errorf("Dot parallel = %v; want 2", got)
		}
	})

	t.Run("Cross", func(t *testing.T) {
		if got := x.Cross(y); !got.Eq(z) {
			t.Errorf("X cross Y = %v; want %v", got, z)
		}
		if got := y.Cross(x); !got.Eq(z.Mul(-1)) {
			t.Errorf("Y cross X = %v; want %v", got, z.Mul(-1))
		}
	})
}

func TestVector3D_Magnitude(t *testing.T) {
	v := Vector3D{2, 3, 6} // 2-3-6-7 quadruple

	if got := v.Len(); got != 7 {
		t.Errorf("Len = %v; want 7", got)
	}
	if got := v.LenSqr(); got != 49 {
		t.Errorf("LenSqr = %v; want 49", got)
	}

	n := v.Normalize()
	if !floatEquals(n.Len(), 1.0) {
		t.Errorf("Normalize length = %v; want 1", n.Len())
	}

	zero := Vector3D{}
	if got := zero.Normalize(); !got.Eq(zero) {
		t.Errorf("Normalize(0,0,0) = %v; want (0,0,0)", got)
	}
}

func TestVector3D_Distance(t *testing.T) {
	v1 := Vector3D{1, 1, 1}
	v2 := Vector3D{3, 4, 7} // dx=2, dy=3, dz=6, dist=7

	if got := v1.DistanceTo(v2); got != 7 {
		t.Errorf("DistanceTo = %v; want 7", got)
	}
	if got := v1.DistanceSquaredTo(v2); got != 49 {
		t.Errorf("DistanceSquaredTo = %v; want 49", got)
	}
}

func TestVector3D_Axes(t *testing.T) {
	v := Vector3D{3, 7, 11}
	if v.Axes() != 3 {
		t.Errorf("Axes = %d; want 3", v.Axes())
	}
	for i, want := range []float64{3, 7, 11} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v; want %v", i, got, want)
		}
	}
	got := v.WithAxis(2, 13)
	if got != (Vector3D{3, 7, 13}) {
		t.Errorf("WithAxis(2, 13) = %v; want (3, 7, 13)", got)
	}
	if v.Z != 11 {
		t.Error("WithAxis mutated the receiver")
	}
}
