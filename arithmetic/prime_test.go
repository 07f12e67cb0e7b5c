package arithmetic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want bool
	}{
		{name: "0", n: 0, want: false},
		{name: "1", n: 1, want: false},
		{name: "2", n: 2, want: true},
		{name: "3", n: 3, want: true},
		{name: "4", n: 4, want: false},
		{name: "25 (5の平方)", n: 25, want: false},
		{name: "49 (7の平方)", n: 49, want: false},
		{name: "29", n: 29, want: true},
		{name: "561 (カーマイケル数)", n: 561, want: false},
		{name: "65537", n: 65537, want: true},
		{name: "1000000007", n: 1000000007, want: true},
		{name: "4294967291 (2^32未満の最大素数)", n: 4294967291, want: true},
		{name: "4294967297 (641 * 6700417)", n: 4294967297, want: false},
		{name: "999999999989", n: 999999999989, want: true},
		{name: "素数の平方 1000003^2", n: 1000003 * 1000003, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrime(tt.n))
		})
	}
}

// 小さい範囲は math/big の判定と全件一致すること
func TestIsPrime_Exhaustive(t *testing.T) {
	for n := uint64(0); n < 20000; n++ {
		want := new(big.Int).SetUint64(n).ProbablyPrime(0)
		assert.Equal(t, want, IsPrime(n), "n=%d", n)
	}
}
