package arithmetic

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/cockroachdb/errors"
)

// Congruence x ≡ Residue (mod Modulus)
type Congruence struct {
	Residue uint64 `json:"residue"`
	Modulus uint64 `json:"modulus"`
}

// CRT 中国剰余定理で連立合同式を1つにまとめる。
// 法の大きい順に2つずつ結合する。法は互いに素でなければ ErrNoInverse、
// 法の積が64bitを超える場合は ErrOverflow。
func CRT(residues, moduli []uint64) (Congruence, error) {
	if len(residues) == 0 || len(residues) != len(moduli) {
		return Congruence{}, errors.Wrapf(ErrPrecondition, "residues=%d moduli=%d", len(residues), len(moduli))
	}

	pairs := make([]Congruence, len(moduli))
	for i, n := range moduli {
		if n == 0 {
			return Congruence{}, errors.Wrapf(ErrPrecondition, "modulus[%d] must be positive", i)
		}
		pairs[i] = Congruence{Residue: residues[i] % n, Modulus: n}
	}

	slices.SortStableFunc(pairs, func(a, b Congruence) int {
		return cmp.Compare(b.Modulus, a.Modulus)
	})

	acc := pairs[0]
	for _, c := range pairs[1:] {
		var err error
		if acc, err = combine(acc, c); err != nil {
			return Congruence{}, err
		}
	}
	return acc, nil
}

// combine 2つの合同式を法 n1*n2 の1つにまとめる
func combine(c1, c2 Congruence) (Congruence, error) {
	hi, n := bits.Mul64(c1.Modulus, c2.Modulus)
	if hi != 0 {
		return Congruence{}, errors.Wrapf(ErrOverflow, "%d * %d", c1.Modulus, c2.Modulus)
	}
	if c2.Modulus == 1 {
		return Congruence{Residue: c1.Residue, Modulus: n}, nil
	}
	if g := Gcd(c1.Modulus, c2.Modulus); g != 1 {
		return Congruence{}, errors.Wrapf(ErrNoInverse, "moduli %d and %d share factor %d", c1.Modulus, c2.Modulus, g)
	}

	inv, err := ModInverse(c1.Modulus, c2.Modulus)
	if err != nil {
		return Congruence{}, err
	}

	// k = (a2 - a1) * n1^-1 mod n2
	diff := AddMod(c2.Residue, c2.Modulus-c1.Residue%c2.Modulus, c2.Modulus)
	k := MulMod(diff, inv, c2.Modulus)

	// a1 + k*n1 <= (n1-1) + (n2-1)*n1 < n1*n2 なので溢れない
	return Congruence{Residue: c1.Residue + k*c1.Modulus, Modulus: n}, nil
}
