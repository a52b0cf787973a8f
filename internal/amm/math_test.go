package amm

import (
	"math/big"
	"testing"
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func TestGetAmountOut_Basic(t *testing.T) {
	t.Parallel()

	out, ok := GetAmountOut(bi("100"), bi("1000"), bi("1000"))
	if !ok {
		t.Fatalf("ok=false")
	}
	if out.Cmp(bi("90")) != 0 { // 90.6... -> 90
		t.Fatalf("want 90 got %s", out.String())
	}
}

func TestGetAmountOut_ReferencePool(t *testing.T) {
	t.Parallel()

	// 100 in against reserves 1000/4000:
	// 99700*4000 / (1000*1000 + 99700) = 398800000/1099700 = 362 (floor).
	out, ok := GetAmountOut(bi("100"), bi("1000"), bi("4000"))
	if !ok {
		t.Fatalf("ok=false")
	}
	if out.Cmp(bi("362")) != 0 {
		t.Fatalf("want 362 got %s", out.String())
	}
}

func TestGetAmountOut_Zeroes(t *testing.T) {
	t.Parallel()

	if _, ok := GetAmountOut(bi("0"), bi("1"), bi("1")); ok {
		t.Fatal("zero amountIn should be false")
	}
	if _, ok := GetAmountOut(bi("1"), bi("0"), bi("1")); ok {
		t.Fatal("zero reserveIn should be false")
	}
	if _, ok := GetAmountOut(bi("1"), bi("1"), bi("0")); ok {
		t.Fatal("zero reserveOut should be false")
	}
}

func TestGetAmountOut_NeverDrainsReserve(t *testing.T) {
	t.Parallel()

	reserves := []string{"1", "2", "1000", "999999999999999999999999"}
	amounts := []string{"1", "1000", "123456789", "999999999999999999999999999"}
	for _, rIn := range reserves {
		for _, rOut := range reserves {
			for _, ain := range amounts {
				out, ok := GetAmountOut(bi(ain), bi(rIn), bi(rOut))
				if !ok {
					t.Fatalf("ok=false for in=%s rIn=%s rOut=%s", ain, rIn, rOut)
				}
				if out.Cmp(bi(rOut)) >= 0 {
					t.Fatalf("out %s >= reserveOut %s for in=%s rIn=%s", out, rOut, ain, rIn)
				}
			}
		}
	}
}

func TestInitialShares(t *testing.T) {
	t.Parallel()

	// floor(sqrt(1000*4000)) = 2000.
	if got := initialShares(bi("1000"), bi("4000")); got.Cmp(bi("2000")) != 0 {
		t.Fatalf("want 2000 got %s", got)
	}
	// floor(sqrt(2)) = 1.
	if got := initialShares(bi("1"), bi("2")); got.Cmp(bi("1")) != 0 {
		t.Fatalf("want 1 got %s", got)
	}
}

func TestProportionalShares(t *testing.T) {
	t.Parallel()

	// Matching the 1000/4000 ratio with 100/400 against 2000 total shares.
	got := proportionalShares(bi("100"), bi("400"), bi("1000"), bi("4000"), bi("2000"))
	if got.Cmp(bi("200")) != 0 {
		t.Fatalf("want 200 got %s", got)
	}

	// A lopsided deposit is awarded the lesser proportional claim.
	got = proportionalShares(bi("100"), bi("4000"), bi("1000"), bi("4000"), bi("2000"))
	if got.Cmp(bi("200")) != 0 {
		t.Fatalf("want 200 got %s", got)
	}
}

func BenchmarkGetAmountOut(b *testing.B) {
	ain := bi("1000000000000000000")
	rIn := bi("1234567890000000000000")
	rOut := bi("987654321000000000000000")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := GetAmountOut(ain, rIn, rOut); !ok {
			b.Fatal("unexpected false")
		}
	}
}
