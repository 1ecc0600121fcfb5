package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestDivModHalf(t *testing.T) {
	for i, a := range []struct {
		x nat
		d Word
		q nat
		r Word
	}{
		{nil, 3, nil, 0},
		{nat{7}, 3, nat{2}, 1},
		{nat{_M}, 1, nat{_M}, 0},
		{nat{_M}, _HM, nat{0x8001}, 0},
		{nat{0, 1}, 2, nat{1 << 29}, 0},
		{nat{1, 1}, 2, nat{1 << 29}, 1},
	} {
		q, r := nat(nil).divModHalf(a.x, a.d)
		if q.cmp(a.q) != 0 || r != a.r {
			t.Errorf("#%d divModHalf(%v, %d) = %v, %d; want %v, %d", i, a.x, a.d, q, r, a.q, a.r)
		}
	}
}

// divCheck verifies q, r from x / y against math/big and the division
// identity q*y + r == x with 0 <= r < y.
func divCheck(t *testing.T, x, y *Int) {
	t.Helper()
	q, err := Div(x, y)
	if err != nil {
		t.Fatalf("Div(%v, %v): %v", x, y, err)
	}
	r, err := Rem(x, y)
	if err != nil {
		t.Fatalf("Rem(%v, %v): %v", x, y, err)
	}
	checkInv(t, q)
	checkInv(t, r)
	wantQ, wantR := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
	if toBig(q).Cmp(wantQ) != 0 {
		t.Fatalf("Div(%v, %v) = %v; want %v", toBig(x), toBig(y), toBig(q), wantQ)
	}
	if toBig(r).Cmp(wantR) != 0 {
		t.Fatalf("Rem(%v, %v) = %v; want %v", toBig(x), toBig(y), toBig(r), wantR)
	}
}

func TestDivLargeRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1500; i++ {
		x := randInt(rnd, 40)
		y := randInt(rnd, 1+rnd.Intn(12))
		if y.IsZero() {
			continue
		}
		divCheck(t, x, y)
	}
}

// Divisors with saturated half-digits drive the quotient estimate to
// its correction paths.
func TestDivLargeSaturated(t *testing.T) {
	one := big.NewInt(1)
	pow2m1 := func(k uint) *Int {
		return fromBig(new(big.Int).Sub(new(big.Int).Lsh(one, k), one))
	}
	pow2 := func(k uint) *Int {
		return fromBig(new(big.Int).Lsh(one, k))
	}
	for _, a := range []struct{ x, y *Int }{
		{pow2m1(900), pow2m1(450)},
		{pow2m1(900), pow2m1(451)},
		{pow2(899), pow2m1(450)},
		{pow2m1(600), pow2(300)},
		{pow2m1(121), pow2m1(61)},
		{pow2(120), pow2m1(60)},
		{pow2m1(90), pow2m1(45)},
		{pow2m1(64), pow2m1(32)},
	} {
		divCheck(t, a.x, a.y)
		divCheck(t, Neg(a.x), a.y)
		divCheck(t, a.x, Neg(a.y))
		divCheck(t, Neg(a.x), Neg(a.y))
	}

	// Near-boundary windows around the divisor magnitude.
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		y := randInt(rnd, 8)
		if y.IsZero() {
			continue
		}
		by := new(big.Int).Abs(toBig(y))
		for _, k := range []int64{-2, -1, 0, 1, 2} {
			bx := new(big.Int).Mul(by, big.NewInt(int64(1+rnd.Intn(1<<20))))
			bx.Add(bx, big.NewInt(k))
			if bx.Sign() < 0 {
				continue
			}
			divCheck(t, fromBig(bx), y)
		}
	}
}
