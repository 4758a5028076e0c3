package atof

import (
	"math"
	"testing"
)

func TestF64FromBits(t *testing.T) {
	if v := f64FromBits(0); v != 0 || math.Signbit(v) {
		t.Fatalf("f64FromBits(0) = %v, want +0", v)
	}
	if v := f64FromBits(infBits); !math.IsInf(v, 1) {
		t.Fatalf("f64FromBits(infBits) = %v, want +Inf", v)
	}
	if v := f64FromBits(nanBits); !math.IsNaN(v) {
		t.Fatalf("f64FromBits(nanBits) = %v, want NaN", v)
	}
	if v := f64FromBits(0x3FF0000000000000); v != 1 {
		t.Fatalf("f64FromBits(0x3FF...) = %v, want 1", v)
	}
}
