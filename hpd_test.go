package atof

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func digitsOf(h *hpd) []uint8 { return h.digits[:h.numDigits] }

func eqDigits(got []uint8, want ...uint8) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestHPD_Parse(t *testing.T) {
	cases := []struct {
		in           string
		opt          Option
		wantErr      bool
		wantDigits   []uint8
		wantDP       int32
		wantNegative bool
	}{
		{in: "123", wantDigits: []uint8{1, 2, 3}, wantDP: 3},
		{in: "0.007", wantDigits: []uint8{7}, wantDP: -2},
		{in: "00.7", opt: AllowMultipleLeadingZeroes, wantDigits: []uint8{7}, wantDP: 0},
		{in: "01", opt: AllowMultipleLeadingZeroes, wantDigits: []uint8{1}, wantDP: 1},
		{in: "00", opt: AllowMultipleLeadingZeroes, wantDigits: nil, wantDP: 0},
		{in: ".5", wantDigits: []uint8{5}, wantDP: 0},
		{in: "5.", wantDigits: []uint8{5}, wantDP: 1},
		{in: "-5", wantDigits: []uint8{5}, wantDP: 1, wantNegative: true},
		{in: "01", wantErr: true},
		{in: "", wantErr: true},
		{in: "+", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "1e", wantErr: true},
		{in: "1,5", opt: DecimalSeparatorIsComma, wantDigits: []uint8{1, 5}, wantDP: 1},
	}
	for _, c := range cases {
		var h hpd
		err := h.parse([]byte(c.in), c.opt)
		if c.wantErr {
			if err == nil {
				t.Errorf("parse(%q) = nil error, want error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parse(%q) = %v, want nil", c.in, err)
			continue
		}
		if !eqDigits(digitsOf(&h), c.wantDigits...) {
			t.Errorf("parse(%q) digits = %v, want %v", c.in, digitsOf(&h), c.wantDigits)
		}
		if h.decimalPoint != c.wantDP {
			t.Errorf("parse(%q) decimalPoint = %d, want %d", c.in, h.decimalPoint, c.wantDP)
		}
		if h.negative != c.wantNegative {
			t.Errorf("parse(%q) negative = %v, want %v", c.in, h.negative, c.wantNegative)
		}
	}
}

func TestHPD_ParseUnderscores(t *testing.T) {
	var h hpd
	if err := h.parse([]byte("1_000_000"), AllowUnderscores); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !eqDigits(digitsOf(&h), 1) || h.decimalPoint != 7 {
		t.Fatalf("parse(1_000_000) digits=%v dp=%d, want [1] dp=7", digitsOf(&h), h.decimalPoint)
	}

	h = hpd{}
	if err := h.parse([]byte("1000000"), 0); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := (&hpd{}).parse([]byte("1_000"), 0); err == nil {
		t.Fatalf("parse(1_000) without AllowUnderscores should fail")
	}
}

func TestHPD_Trim(t *testing.T) {
	h := hpd{numDigits: 4, digits: [precision]uint8{1, 2, 0, 0}, decimalPoint: 4}
	h.trim()
	if h.numDigits != 2 {
		t.Fatalf("trim left numDigits=%d, want 2", h.numDigits)
	}
	h = hpd{numDigits: 2, digits: [precision]uint8{0, 0}, decimalPoint: 5}
	h.trim()
	if h.numDigits != 0 || h.decimalPoint != 0 {
		t.Fatalf("trim of all-zero hpd: numDigits=%d decimalPoint=%d, want 0,0", h.numDigits, h.decimalPoint)
	}
}

func TestHPD_RoundedInteger(t *testing.T) {
	cases := []struct {
		digits []uint8
		dp     int32
		want   uint64
	}{
		{[]uint8{1, 2, 3}, 3, 123},
		{[]uint8{1, 2, 5}, 2, 12},  // 12.5 -> 12 (ties to even)
		{[]uint8{1, 3, 5}, 2, 14},  // 13.5 -> 14 (ties to even)
		{[]uint8{1, 2, 6}, 2, 13},  // 12.6 -> 13
		{[]uint8{9, 9}, 2, 99},
	}
	for _, c := range cases {
		h := hpd{decimalPoint: c.dp}
		for i, d := range c.digits {
			h.digits[i] = d
		}
		h.numDigits = len(c.digits)
		if got := h.roundedInteger(); got != c.want {
			t.Errorf("roundedInteger(%v, dp=%d) = %d, want %d", c.digits, c.dp, got, c.want)
		}
	}
}

func TestHPD_ShiftRoundTrip(t *testing.T) {
	var h hpd
	if err := h.parse([]byte("123456789"), 0); err != nil {
		t.Fatalf("parse: %v", err)
	}
	var before hpd
	if err := before.parse([]byte("123456789"), 0); err != nil {
		t.Fatalf("parse: %v", err)
	}

	h.lshift(10)
	h.rshift(10)

	// Digits past numDigits are scratch left over from the wider
	// intermediate value, not part of h's value.
	for i := h.numDigits; i < precision; i++ {
		h.digits[i] = 0
	}

	diffOpt := cmp.AllowUnexported(hpd{})
	if diff := cmp.Diff(before, h, diffOpt); diff != "" {
		t.Fatalf("lshift(10) then rshift(10) changed value (-want +got):\n%s", diff)
	}
}

// TestLshiftNumNewDigits_ExactTie covers the boundary where h's leading
// digits exactly equal the shift's 5**shift cutoff string, rather than
// falling strictly short of or past it. shift=4 gives cutoff "625"
// (5**4); an HPD holding exactly "625" must compare equal, and per
// spec.md §4.6 an equal-length equal-prefix match yields N, not N-1.
func TestLshiftNumNewDigits_ExactTie(t *testing.T) {
	h := hpd{numDigits: 3, digits: [precision]uint8{6, 2, 5}}
	if got := lshiftNumNewDigits(&h, 4); got != 2 {
		t.Fatalf("lshiftNumNewDigits(625, 4) = %d, want 2", got)
	}
}
