package arithmetic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExp(t *testing.T) {
	tests := []struct {
		name           string
		base, exp, mod uint64
		want           uint64
		wantErr        bool
	}{
		{name: "教科書の例", base: 4, exp: 13, mod: 497, want: 445},
		{name: "2^13 mod 7", base: 2, exp: 13, mod: 7, want: 2},
		{name: "指数0", base: 5, exp: 0, mod: 7, want: 1},
		{name: "0^0 は 1", base: 0, exp: 0, mod: 7, want: 1},
		{name: "法が1", base: 5, exp: 0, mod: 1, want: 0},
		{name: "フェルマー素数", base: 3, exp: 65536, mod: 65537, want: 1},
		{name: "64bit境界", base: 2, exp: 64, mod: 1<<64 - 1, want: 1},
		{name: "法が0", base: 2, exp: 3, mod: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModExp(tt.base, tt.exp, tt.mod)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPrecondition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModExp_Properties(t *testing.T) {
	r := newRand()

	for i := 0; i < 3000; i++ {
		m := r.Uint64N(1<<32-1) + 1
		a, e := r.Uint64(), r.Uint64()

		got, err := ModExp(a, e, m)
		require.NoError(t, err)
		again, _ := ModExp(a, e, m)
		assert.Equal(t, got, again, "決定的であること")
		assert.Less(t, got, m)

		zero, _ := ModExp(a, 0, m)
		assert.Equal(t, 1%m, zero)

		want := new(big.Int).Exp(new(big.Int).SetUint64(a), new(big.Int).SetUint64(e), new(big.Int).SetUint64(m))
		assert.Equal(t, want.Uint64(), got, "a=%d e=%d m=%d", a, e, m)
	}
}

// 大きな奇数の法では saferith と突き合わせる
func TestModExp_Saferith(t *testing.T) {
	r := newRand()
	moduli := []uint64{mersenne61, maxPrime64, 1<<64 - 1, 1000000007 * 998244353}

	for _, m := range moduli {
		for i := 0; i < 200; i++ {
			a, e := r.Uint64(), r.Uint64()
			got, err := ModExp(a, e, m)
			require.NoError(t, err)
			assert.Equal(t, saferithExp(a, e, m), got, "a=%d e=%d m=%d", a, e, m)
		}
	}
}

// フェルマーの小定理 a^(p-1) ≡ 1
func TestModExp_Fermat(t *testing.T) {
	r := newRand()
	primes := []uint64{2, 3, 5, 17, 65537, 998244353, 1000000007, 4294967291, mersenne61, maxPrime64}

	for _, p := range primes {
		for i := 0; i < 100; i++ {
			a := r.Uint64N(p-1) + 1
			got, err := ModExp(a, p-1, p)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), got, "a=%d p=%d", a, p)
		}
	}
}

// 縮約済みの値と a + k*m で同じ結果になること
func TestModExp_Idempotence(t *testing.T) {
	r := newRand()

	for i := 0; i < 1000; i++ {
		m := r.Uint64N(1<<20) + 1
		a := r.Uint64N(m)
		k := r.Uint64N(1 << 20)
		e := r.Uint64()

		reduced, _ := ModExp(a, e, m)
		unreduced, _ := ModExp(a+k*m, e, m)
		assert.Equal(t, reduced, unreduced)
	}
}
