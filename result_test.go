package atof

import (
	"math"
	"testing"
)

func TestResult_Err(t *testing.T) {
	if err := ok(1.5).Err(); err != nil {
		t.Fatalf("ok(1.5).Err() = %v, want nil", err)
	}
	if err := bad().Err(); err != ErrSyntax {
		t.Fatalf("bad().Err() = %v, want ErrSyntax", err)
	}
}

func TestSignedZero(t *testing.T) {
	r := signedZero(false)
	if math.Signbit(r.Value) {
		t.Fatalf("signedZero(false) has sign bit set")
	}
	r = signedZero(true)
	if !math.Signbit(r.Value) {
		t.Fatalf("signedZero(true) missing sign bit")
	}
	if r.Value != 0 {
		t.Fatalf("signedZero(true).Value = %v, want 0", r.Value)
	}
}

func TestSignedInf(t *testing.T) {
	r := signedInf(false)
	if !math.IsInf(r.Value, 1) {
		t.Fatalf("signedInf(false) = %v, want +Inf", r.Value)
	}
	r = signedInf(true)
	if !math.IsInf(r.Value, -1) {
		t.Fatalf("signedInf(true) = %v, want -Inf", r.Value)
	}
}
