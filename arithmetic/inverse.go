package arithmetic

import "github.com/cockroachdb/errors"

// ModInverse a*d ≡ 1 (mod m) を満たす d ∈ [0, m) を求める。
// a は事前に縮約しなくてよい。m <= 1 は ErrPrecondition、gcd(a, m) != 1 は ErrNoInverse。
//
// m が素数ならフェルマーの小定理 a^(m-2)、合成数なら拡張ユークリッドの係数を使う。
// 素数判定は IsPrime の試し割りなので、巨大な素数の法では判定自体に時間がかかる。
func ModInverse(a, m uint64) (uint64, error) {
	if m <= 1 {
		return 0, errors.Wrapf(ErrPrecondition, "modulus must be greater than 1: %d", m)
	}

	if IsPrime(m) {
		return inverseFermat(a, m)
	}
	return inverseEuclid(a, m)
}

// inverseFermat 素数 m 専用
func inverseFermat(a, m uint64) (uint64, error) {
	if a%m == 0 {
		return 0, errors.Wrapf(ErrNoInverse, "%d is divisible by prime modulus %d", a, m)
	}
	return modExp(a, m-2, m), nil
}

// inverseEuclid euclid の x 係数を floor-mod で [0, m) に正規化する
func inverseEuclid(a, m uint64) (uint64, error) {
	w := euclid(a%m, m)
	if w.gcd != 1 {
		return 0, errors.Wrapf(ErrNoInverse, "gcd(%d, %d) = %d", a, m, w.gcd)
	}

	x := w.x % m
	if w.xNeg && x != 0 {
		x = m - x
	}
	return x, nil
}
