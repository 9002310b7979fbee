package fix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"zero translation", Translate(0, 0), true},
		{"unit scale", Scaling(One, One), true},
		{"full turn rotation", Rotate(FullTurn), true},
		{"translation", Translate(One, 0), false},
		{"scale", Scaling(2*One, One), false},
		{"quarter rotation", Rotate(QuarterTurn), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name         string
		m            Matrix
		x, y         Fixed
		wantX, wantY Fixed
	}{
		{"identity", Identity(), FromInt(3), FromInt(4), FromInt(3), FromInt(4)},
		{"translate", Translate(FromInt(10), FromInt(-2)), One, One, FromInt(11), -One},
		{"scale", Scaling(2*One, Half), FromInt(3), FromInt(4), FromInt(6), FromInt(2)},
		{"rotate quarter", Rotate(QuarterTurn), One, 0, 0, One},
		{"rotate half", Rotate(HalfTurn), FromInt(2), FromInt(3), FromInt(-2), FromInt(-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, err := tt.m.TransformPoint(tt.x, tt.y)
			if err != nil {
				t.Fatalf("TransformPoint error = %v", err)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	// Scale then translate: translation is scaled too.
	m, err := Scaling(2*One, 3*One).Multiply(Translate(FromInt(10), FromInt(20)))
	if err != nil {
		t.Fatalf("Multiply error = %v", err)
	}
	want := Matrix{
		A: 2 * One, B: 0, C: FromInt(20),
		D: 0, E: 3 * One, F: FromInt(60),
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Multiply mismatch (-want +got):\n%s", diff)
	}

	m, err = Identity().Multiply(Rotate(FromInt(32)))
	if err != nil || m != Rotate(FromInt(32)) {
		t.Errorf("Identity().Multiply(R) = %+v, %v; want R", m, err)
	}
}

func TestMultiplyOverflow(t *testing.T) {
	big := Scaling(FromInt(1000), FromInt(1000))
	m, err := big.Multiply(big)
	if !errors.Is(err, ErrRange) {
		t.Fatalf("Multiply error = %v, want ErrRange", err)
	}
	if m.A != MaxFixed || m.E != MaxFixed {
		t.Errorf("saturated elements = %v, %v; want MaxFixed", m.A, m.E)
	}

	_, _, err = big.TransformPoint(FromInt(100), 0)
	if !errors.Is(err, ErrRange) {
		t.Errorf("TransformPoint error = %v, want ErrRange", err)
	}
}

func TestAff3(t *testing.T) {
	m := Matrix{
		A: One, B: Half, C: FromInt(-3),
		D: 0, E: 2 * One, F: One,
	}
	want := f64.Aff3{1, 0.5, -3, 0, 2, 1}
	if got := m.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}

	back, err := MatrixFromAff3(want)
	if err != nil || back != m {
		t.Errorf("MatrixFromAff3(%v) = %+v, %v; want %+v", want, back, err, m)
	}

	_, err = MatrixFromAff3(f64.Aff3{1, 0, 1e6, 0, 1, 0})
	if !errors.Is(err, ErrRange) {
		t.Errorf("MatrixFromAff3 with large translation error = %v, want ErrRange", err)
	}
}
