package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

// toBig converts x to a *big.Int digit by digit, independently of the
// package's own string conversion.
func toBig(x *Int) *big.Int {
	b := new(big.Int)
	for i := len(x.abs) - 1; i >= 0; i-- {
		b.Lsh(b, _W)
		b.Or(b, big.NewInt(int64(x.abs[i])))
	}
	if x.neg {
		b.Neg(b)
	}
	return b
}

// fromBig converts a *big.Int to an Int digit by digit.
func fromBig(b *big.Int) *Int {
	neg := b.Sign() < 0
	t := new(big.Int).Abs(b)
	mask := big.NewInt(_M)
	var abs nat
	w := new(big.Int)
	for t.Sign() != 0 {
		abs = append(abs, Word(w.And(t, mask).Uint64()))
		t = new(big.Int).Rsh(t, _W)
	}
	return makeInt(neg, abs)
}

// randInt returns a value with up to maxDigits digits and a random
// sign.
func randInt(rnd *rand.Rand, maxDigits int) *Int {
	n := rnd.Intn(maxDigits + 1)
	abs := make(nat, n)
	for i := range abs {
		abs[i] = Word(rnd.Uint32()) & _M
	}
	if n > 0 && abs[n-1] == 0 {
		abs[n-1] = Word(rnd.Uint32())&_M | 1
	}
	return makeInt(rnd.Intn(2) == 0, abs.norm())
}

// checkInv fails the test when v violates the representation
// invariants: digit range, trimmed top digit, canonical zero.
func checkInv(t *testing.T, v *Int) {
	t.Helper()
	for i, d := range v.abs {
		if d > _M {
			t.Fatalf("digit %d out of range: %#x", i, d)
		}
	}
	if n := len(v.abs); n > 0 && v.abs[n-1] == 0 {
		t.Fatalf("untrimmed top digit: %v", v.abs)
	}
	if len(v.abs) == 0 && v.neg {
		t.Fatal("negative zero")
	}
}
