package money

import "testing"

func TestParseQuantizes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100.00"},
		{"100.1", "100.10"},
		{"100.004", "100.00"},
		{"100.005", "100.01"},
		{"0", "0.00"},
	}
	for _, tc := range cases {
		a, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got := a.String(); got != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("not-a-number"); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestArithmeticRoundTrip(t *testing.T) {
	a := MustParse("100.00")
	b := MustParse("30.00")

	sum := a.Add(b)
	if sum.String() != "130.00" {
		t.Errorf("Add = %s, want 130.00", sum.String())
	}

	diff := a.Sub(b)
	if diff.String() != "70.00" {
		t.Errorf("Sub = %s, want 70.00", diff.String())
	}

	reparsed := MustParse(diff.String())
	if reparsed.Cmp(diff) != 0 {
		t.Errorf("round-trip mismatch: %s != %s", reparsed, diff)
	}
}

func TestComparisons(t *testing.T) {
	small := MustParse("10.00")
	big := MustParse("20.00")

	if !small.LessThan(big) {
		t.Error("expected 10.00 < 20.00")
	}
	if big.LessThan(small) {
		t.Error("expected 20.00 not < 10.00")
	}
	if !Zero.IsZero() {
		t.Error("Zero should report IsZero")
	}
	if small.Sub(big).IsPositive() {
		t.Error("10.00 - 20.00 should not be positive")
	}
	if !small.Sub(big).IsNegative() {
		t.Error("10.00 - 20.00 should be negative")
	}
}
