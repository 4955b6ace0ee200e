package answer

import "testing"

func TestEquivalent(t *testing.T) {
	tests := []struct {
		user, correct string
		want          bool
	}{
		// Exact, trimmed and case-folded.
		{"rational", "rational", true},
		{"  Rational ", "rational", true},
		{"x < 7", "x < 7", true},
		{"C(m) = 2.5m + 4", "c(m) = 2.5m + 4", true},
		{"(3, -2)", "(3, -2)", true},
		{"(3,-2)", "(3, -2)", false},
		{"irrational", "rational", false},

		// Expression equality.
		{"sqrt(144)", "12", true},
		{"2^3", "8", true},
		{"3.50", "3.5", true},
		{"007", "7", true},
		{"4500", "4.5 × 10^3", true},
		{"4.5*10^3", "4.5 × 10^3", true},
		{"5^7", "78125", true},
		{"2pi", "6.283185307", true},
		{"12", "13", false},

		// Tolerance boundary.
		{"9.99995", "10", true},
		{"9.9985", "10", false},
		{"10.00005", "10", true},
		{"10.0002", "10", false},

		// Fractions and decimals.
		{"1/2", "0.5", true},
		{"3/8", "0.375", true},
		{"0.375", "3/8", true},
		{"2/4", "1/2", true},
		{"-3/4", "-0.75", true},
		{"1/3", "0.3333", true},
		{"1/3", "0.33", false},
		{"1 / 2", "0.5", true},

		// Ratios.
		{"18:24", "3:4", true},
		{"4:6", "2:3", true},
		{"4:6", "3:4", false},
		{"3:6", "1:2", true},
		{"-4:6", "-2:3", true},
		{"-4:6", "2:-3", false},
		{"0:5", "0:1", true},
		{"2 : 3", "2:3", true},

		// Fail closed.
		{"", "5", false},
		{"5", "", false},
		{"abc", "5", false},
		{"process.exit()", "0", false},
		{"1/0", "0", false},
		{"infinity", "1", false},
		{"x", "5", false},
	}
	for _, tc := range tests {
		if got := Equivalent(tc.user, tc.correct); got != tc.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
		}
	}
}

func TestEquivalent_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"1/2", "0.5"},
		{"3/8", "0.375"},
		{"9.99995", "10"},
		{"sqrt(144)", "12"},
		{"18:24", "3:4"},
		{"-7", "-7.00"},
	}
	for _, p := range pairs {
		if !Equivalent(p[0], p[1]) || !Equivalent(p[1], p[0]) {
			t.Errorf("Equivalent not symmetric for %q and %q", p[0], p[1])
		}
	}
}

func TestEquivalent_NeverPanics(t *testing.T) {
	inputs := []string{
		"", "(", ")", "((((", "^", "--", "1/", "/1", ":", "1:", ":1",
		"99999999999999999999999:1", "1/99999999999999999999999",
		"sqrt(", "pow(,)", "∞", "−", "×÷", "\x00", "日本",
	}
	for _, a := range inputs {
		for _, b := range inputs {
			Equivalent(a, b)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct{ a, b, want int64 }{
		{18, 24, 6},
		{7, 3, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-4, 6, 2},
		{12, -18, 6},
	}
	for _, tc := range tests {
		if got := GCD(tc.a, tc.b); got != tc.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
