package atof

import "testing"

func TestScanFast_Bails(t *testing.T) {
	bails := []string{
		"+1", "1_000", "00", "007", "", "1.2.3", "1e", "1x", "1.",
		"9999999999999999999999", // too many significant digits
	}
	for _, in := range bails {
		if _, _, _, ok := scanFast([]byte(in), 0); ok {
			t.Errorf("scanFast(%q) succeeded, want bail", in)
		}
	}
}

func TestScanFast_Accepts(t *testing.T) {
	cases := []struct {
		in        string
		man       uint64
		exp10     int
		negative  bool
	}{
		{"0", 0, 0, false},
		{"-0", 0, 0, true},
		{"123", 123, 0, false},
		{"1.25", 125, -2, false},
		{"1e10", 1, 10, false},
		{"1.5e-3", 15, -4, false},
		{"-42", 42, 0, true},
	}
	for _, c := range cases {
		man, exp10, neg, ok := scanFast([]byte(c.in), 0)
		if !ok {
			t.Errorf("scanFast(%q) bailed, want success", c.in)
			continue
		}
		if man != c.man || exp10 != c.exp10 || neg != c.negative {
			t.Errorf("scanFast(%q) = (%d,%d,%v), want (%d,%d,%v)",
				c.in, man, exp10, neg, c.man, c.exp10, c.negative)
		}
	}
}

func TestScanFast_ZeroWithExponentBails(t *testing.T) {
	if _, _, _, ok := scanFast([]byte("0e99"), 0); ok {
		t.Fatalf("scanFast(0e99) succeeded, want bail to slow path")
	}
	if _, _, _, ok := scanFast([]byte("0e0"), 0); !ok {
		t.Fatalf("scanFast(0e0) bailed, want success")
	}
}

func TestTryFastLexer_ExactZero(t *testing.T) {
	for _, in := range []string{"0", "0.0", "0e0"} {
		r, handled := tryFastLexer([]byte(in), 0)
		if !handled {
			t.Errorf("tryFastLexer(%q) did not handle input", in)
			continue
		}
		if r.Value != 0 {
			t.Errorf("tryFastLexer(%q) = %v, want 0", in, r.Value)
		}
	}
}

func TestTryFastLexer_Comma(t *testing.T) {
	r, handled := tryFastLexer([]byte("1,5"), DecimalSeparatorIsComma)
	if !handled || r.Value != 1.5 {
		t.Fatalf("tryFastLexer(1,5) = (%v,%v), want (1.5,true)", r.Value, handled)
	}
	_, handled = tryFastLexer([]byte("1,5"), 0)
	if handled {
		t.Fatalf("tryFastLexer(1,5) without comma option should not handle it")
	}
}
