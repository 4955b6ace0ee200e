package problemgen

import (
	"testing"

	"github.com/abhisek/middlemath/internal/sampler"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func zeroSampler() *sampler.Sampler { return sampler.New(constSource(0)) }

func TestLinear(t *testing.T) {
	tests := []struct {
		coef, c int
		want    string
	}{
		{3, 5, "3x + 5"},
		{3, -5, "3x - 5"},
		{1, 2, "x + 2"},
		{-1, 0, "-x"},
		{0, 7, "7"},
		{0, 0, "0"},
		{-4, -1, "-4x - 1"},
	}
	for _, tt := range tests {
		if got := linear(tt.coef, "x", tt.c); got != tt.want {
			t.Errorf("linear(%d, x, %d) = %q, want %q", tt.coef, tt.c, got, tt.want)
		}
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		num, den int
		want     string
		steps    string
	}{
		{2, 6, "1/3", "2/6 = 1/3"},
		{3, 7, "3/7", "3/7"},
		{6, -3, "-2", "6/-3 = -2"},
		{-4, -6, "2/3", "-4/-6 = 2/3"},
		{0, 5, "0", "0/5 = 0"},
	}
	for _, tt := range tests {
		if got := fraction(tt.num, tt.den); got != tt.want {
			t.Errorf("fraction(%d, %d) = %q, want %q", tt.num, tt.den, got, tt.want)
		}
		if got := fractionSteps(tt.num, tt.den); got != tt.steps {
			t.Errorf("fractionSteps(%d, %d) = %q, want %q", tt.num, tt.den, got, tt.steps)
		}
	}
}

func TestSignedAndParen(t *testing.T) {
	if got := signed(-4); got != "- 4" {
		t.Errorf("signed(-4) = %q", got)
	}
	if got := signed(0); got != "+ 0" {
		t.Errorf("signed(0) = %q", got)
	}
	if got := paren(-3); got != "(-3)" {
		t.Errorf("paren(-3) = %q", got)
	}
	if got := paren(3); got != "3" {
		t.Errorf("paren(3) = %q", got)
	}
}

func TestNonZero_Fallback(t *testing.T) {
	s := zeroSampler()
	if got := nonZero(s, 0, 0); got != 0 {
		t.Errorf("nonZero(0, 0) = %d, want fallback 0", got)
	}
	if got := nonZero(s, -5, 5); got == 0 {
		t.Error("nonZero returned 0")
	}
}
