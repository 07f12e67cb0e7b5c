package arithmetic

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// ResidueReport x mod p の平方剰余判定の結果。
// IsResidue のとき Roots[0] は a^2 ≡ x を満たす最小の a、Roots[1] は (p - a) mod p。
type ResidueReport struct {
	Value     uint64    `json:"value"`
	Modulus   uint64    `json:"modulus"`
	IsResidue bool      `json:"is_residue"`
	Roots     [2]uint64 `json:"roots"`
}

// IsQuadraticResidue オイラーの規準で x が p を法とする平方剰余か判定する。
// x ≡ 0 は剰余として扱う。p は奇素数でなければ ErrPrecondition。
func IsQuadraticResidue(x, p uint64) (bool, error) {
	if err := checkOddPrime(p); err != nil {
		return false, err
	}
	return isResidue(x, p), nil
}

// Legendre ルジャンドル記号 (x/p) を 1, -1, 0 で返す
func Legendre(x, p uint64) (int, error) {
	if err := checkOddPrime(p); err != nil {
		return 0, err
	}
	if x%p == 0 {
		return 0, nil
	}

	switch modExp(x, (p-1)/2, p) {
	case 1:
		return 1, nil
	case p - 1:
		return -1, nil
	}

	logger.WithFields(logrus.Fields{
		"value":   x,
		"modulus": p,
	}).Errorf("euler criterion is neither 1 nor -1")
	return 0, errors.AssertionFailedf("euler criterion for %d mod %d is neither 1 nor -1", x, p)
}

// SquareRoots x の平方根を [0, p) の総当たりで探す。
//
// 計算量は O(p) なので小さな p 専用。
// p ≡ 3 (mod 4) なら SquareRoots3Mod4、任意の奇素数なら SquareRootsTonelliShanks が使える。
func SquareRoots(x, p uint64) (ResidueReport, error) {
	if err := checkOddPrime(p); err != nil {
		return ResidueReport{}, err
	}

	report := ResidueReport{Value: x, Modulus: p}
	if !isResidue(x, p) {
		return report, nil
	}

	target := x % p
	for a := uint64(0); a < p; a++ {
		if MulMod(a, a, p) == target {
			report.IsResidue = true
			report.Roots = [2]uint64{a, (p - a) % p}
			return report, nil
		}
	}

	logger.WithFields(logrus.Fields{
		"value":   x,
		"modulus": p,
	}).Errorf("square root search exhausted for accepted residue")
	return ResidueReport{}, errors.AssertionFailedf("no square root of %d mod %d despite euler criterion", x, p)
}

// SquareRoots3Mod4 p ≡ 3 (mod 4) の素数に限り x^((p+1)/4) で平方根を求める。
// 根は小さい順に並ぶので SquareRoots と同じ結果になる。
func SquareRoots3Mod4(x, p uint64) (ResidueReport, error) {
	if err := checkOddPrime(p); err != nil {
		return ResidueReport{}, err
	}
	if p%4 != 3 {
		return ResidueReport{}, errors.Wrapf(ErrPrecondition, "modulus must be 3 mod 4: %d", p)
	}

	report := ResidueReport{Value: x, Modulus: p}
	if !isResidue(x, p) {
		return report, nil
	}

	// p は素数なので 2^64-1 にはならず p+1 は溢れない
	r := modExp(x, (p+1)/4, p)
	if MulMod(r, r, p) != x%p {
		logger.WithFields(logrus.Fields{
			"value":   x,
			"modulus": p,
			"root":    r,
		}).Errorf("closed form root does not square back")
		return ResidueReport{}, errors.AssertionFailedf("%d^2 != %d mod %d", r, x, p)
	}

	s := (p - r) % p
	if s < r {
		r, s = s, r
	}
	report.IsResidue = true
	report.Roots = [2]uint64{r, s}
	return report, nil
}

// SquareRootsTonelliShanks Tonelli-Shanks で任意の奇素数 p について平方根を求める。
// 根の並びは SquareRoots と同じ。
func SquareRootsTonelliShanks(x, p uint64) (ResidueReport, error) {
	if err := checkOddPrime(p); err != nil {
		return ResidueReport{}, err
	}

	report := ResidueReport{Value: x, Modulus: p}
	if !isResidue(x, p) {
		return report, nil
	}
	x %= p
	if x == 0 {
		report.IsResidue = true
		return report, nil
	}

	// p-1 = q * 2^s (q は奇数)
	q, s := p-1, uint64(0)
	for q%2 == 0 {
		q /= 2
		s++
	}

	// 非剰余 z。半分が非剰余なのですぐ見つかる
	z := uint64(2)
	for isResidue(z, p) {
		z++
	}

	m := s
	c := modExp(z, q, p)
	t := modExp(x, q, p)
	r := modExp(x, (q+1)/2, p)
	for t != 1 {
		// t^(2^i) == 1 となる最小の i
		i, t2 := uint64(0), t
		for t2 != 1 && i < m {
			t2 = MulMod(t2, t2, p)
			i++
		}
		if i == m {
			logger.WithFields(logrus.Fields{
				"value":   x,
				"modulus": p,
			}).Errorf("tonelli-shanks found no order below %d", m)
			return ResidueReport{}, errors.AssertionFailedf("tonelli-shanks diverged for %d mod %d", x, p)
		}

		b := c
		for j := uint64(0); j < m-i-1; j++ {
			b = MulMod(b, b, p)
		}
		m = i
		c = MulMod(b, b, p)
		t = MulMod(t, c, p)
		r = MulMod(r, b, p)
	}

	if MulMod(r, r, p) != x {
		logger.WithFields(logrus.Fields{
			"value":   x,
			"modulus": p,
			"root":    r,
		}).Errorf("tonelli-shanks root does not square back")
		return ResidueReport{}, errors.AssertionFailedf("%d^2 != %d mod %d", r, x, p)
	}

	neg := p - r
	if neg < r {
		r, neg = neg, r
	}
	report.IsResidue = true
	report.Roots = [2]uint64{r, neg}
	return report, nil
}

func isResidue(x, p uint64) bool {
	if x%p == 0 {
		return true
	}
	return modExp(x, (p-1)/2, p) == 1
}

// checkOddPrime 平方剰余系の関数は (p-1)/2 を使うため奇素数のみ受け付ける
func checkOddPrime(p uint64) error {
	if p == 2 || !IsPrime(p) {
		return errors.Wrapf(ErrPrecondition, "modulus must be an odd prime: %d", p)
	}
	return nil
}
