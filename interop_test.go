package fix

import (
	"errors"
	"testing"

	"golang.org/x/image/math/fixed"
)

// TestInt26_6 tests Fixed to 26.6 conversion with rounding.
func TestInt26_6(t *testing.T) {
	tests := []struct {
		name  string
		input Fixed
		want  fixed.Int26_6
	}{
		{"zero", 0, 0},
		{"one", One, 64},
		{"half", Half, 32},
		{"negative one", -One, -64},
		{"half step rounds up", 0x200, 1},
		{"below half step", 0x1FF, 0},
		{"max sentinel", MaxFixed, 0x200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Int26_6(); got != tt.want {
				t.Errorf("Fixed(%d).Int26_6() = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestFromInt26_6 tests 26.6 to Fixed conversion and saturation.
func TestFromInt26_6(t *testing.T) {
	tests := []struct {
		name    string
		input   fixed.Int26_6
		want    Fixed
		wantErr error
	}{
		{"zero", 0, 0, nil},
		{"one", fixed.I(1), One, nil},
		{"fraction", 1, 0x400, nil},
		{"negative", fixed.I(-3), FromInt(-3), nil},
		{"largest", fixed.I(32767), FromInt(32767), nil},
		{"too large", fixed.I(40000), MaxFixed, ErrRange},
		{"too small", fixed.I(-40000), MinFixed, ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromInt26_6(tt.input)
			if got != tt.want || !errors.Is(err, tt.wantErr) {
				t.Errorf("FromInt26_6(%d) = %d, %v; want %d, %v", tt.input, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestInt52_12(t *testing.T) {
	tests := []struct {
		name    string
		input   fixed.Int52_12
		want    Fixed
		wantErr error
	}{
		{"one", 1 << 12, One, nil},
		{"half", 1 << 11, Half, nil},
		{"negative", -(3 << 12), FromInt(-3), nil},
		{"too large", 1 << 40, MaxFixed, ErrRange},
		{"too small", -(1 << 40), MinFixed, ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromInt52_12(tt.input)
			if got != tt.want || !errors.Is(err, tt.wantErr) {
				t.Errorf("FromInt52_12(%d) = %d, %v; want %d, %v", tt.input, got, err, tt.want, tt.wantErr)
			}
			if err == nil {
				if back := got.Int52_12(); back != tt.input {
					t.Errorf("round trip of %d gave %d", tt.input, back)
				}
			}
		})
	}
}

func TestPoint26_6(t *testing.T) {
	p := Point26_6(FromInt(3), -Half)
	want := fixed.Point26_6{X: fixed.I(3), Y: -32}
	if p != want {
		t.Errorf("Point26_6(3, -0.5) = %v, want %v", p, want)
	}

	x, y, err := FromPoint26_6(p)
	if err != nil || x != FromInt(3) || y != -Half {
		t.Errorf("FromPoint26_6(%v) = %v, %v, %v", p, x, y, err)
	}

	_, y, err = FromPoint26_6(fixed.Point26_6{X: 0, Y: fixed.I(-50000)})
	if y != MinFixed || !errors.Is(err, ErrRange) {
		t.Errorf("FromPoint26_6 with Y out of range = %v, %v; want MinFixed, ErrRange", y, err)
	}
}
