package arithmetic

import "math/bits"

// MulMod (a * b) mod m を128bitの中間値で計算する。
// a*b が64bitを超えても結果は正確。m == 0 はゼロ除算と同じく panic する。
func MulMod(a, b, m uint64) uint64 {
	// 先に縮約しておけば hi < m となり Div64 の商が溢れない
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// AddMod (a + b) mod m を桁あふれなしで計算する
func AddMod(a, b, m uint64) uint64 {
	a %= m
	b %= m

	s, carry := bits.Add64(a, b, 0)
	// carry がある場合、本当の和は s + 2^64。m を引けば wraparound で正しい値になる
	if carry == 1 || s >= m {
		s -= m
	}
	return s
}

// mulModDoubling 加算と倍加だけで (a * b) mod m を求める。
// 128bit乗算を使わない経路で、MulMod の検算用。O(log b) 回の AddMod。
func mulModDoubling(a, b, m uint64) uint64 {
	a %= m

	var result uint64
	for b > 0 {
		if b&1 == 1 {
			result = AddMod(result, a, m)
		}
		a = AddMod(a, a, m)
		b >>= 1
	}
	return result
}
