package arithmetic

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
)

// newRand テストごとに固定シードの乱数を使う
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(20251015, 97))
}

// bigMulMod math/big による (a*b) mod m の検算
func bigMulMod(a, b, m uint64) uint64 {
	r := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return r.Mod(r, new(big.Int).SetUint64(m)).Uint64()
}

// saferithExp saferith による base^exp mod m の検算 (m は奇数)
func saferithExp(base, exp, m uint64) uint64 {
	mod := saferith.ModulusFromUint64(m)
	b := new(saferith.Nat).Mod(new(saferith.Nat).SetUint64(base), mod)
	e := new(saferith.Nat).SetUint64(exp)
	return new(saferith.Nat).Exp(b, e, mod).Big().Uint64()
}

func TestGcd(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{name: "互いに素", a: 101, b: 23, want: 1},
		{name: "共通因数あり", a: 30, b: 12, want: 6},
		{name: "片方が0", a: 0, b: 7, want: 7},
		{name: "両方0", a: 0, b: 0, want: 0},
		{name: "最大値", a: 1<<64 - 1, b: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gcd(tt.a, tt.b))
		})
	}
}
