package arithmetic

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Bezout a*X + b*Y == GCD を満たす拡張ユークリッドの結果
type Bezout struct {
	GCD int64 `json:"gcd"`
	X   int64 `json:"x"`
	Y   int64 `json:"y"`
}

// walk ユークリッド互除法の途中経過。係数は絶対値と符号に分けて持つ。
// 係数列は1ステップごとに符号が反転し、x と y は常に逆符号になる。
type walk struct {
	gcd  uint64
	x    uint64
	y    uint64
	xNeg bool
}

// euclid 非負整数 a, b に対する拡張ユークリッドの反復版。
// 再帰版 ext(a, b) = (g, y1, x1 - (a/b)*y1) と同じ係数を返す。
// 係数の絶対値は b/gcd, a/gcd を超えないので uint64 で溢れない。
func euclid(a, b uint64) walk {
	oldR, r := a, b
	oldS, s := uint64(1), uint64(0)
	oldT, t := uint64(0), uint64(1)
	odd := false

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		// |s_{i+1}| = |s_{i-1}| + q*|s_i|
		oldS, s = s, oldS+q*s
		oldT, t = t, oldT+q*t
		odd = !odd
	}

	return walk{gcd: oldR, x: oldS, y: oldT, xNeg: odd}
}

// ExtendedGCD a*X + b*Y == gcd(a, b) を満たす Bezout 係数を求める。
//
// 符号の規約: |a|, |b| で互除法を行い、入力の符号を対応する係数に掛ける。
// そのため GCD は常に非負で、a, b が非負なら再帰版の教科書的な結果と一致する。
// 例: ExtendedGCD(101, 23) == {1, -5, 22}
// math.MinInt64 は絶対値が int64 に収まらないため ErrPrecondition。
func ExtendedGCD(a, b int64) (Bezout, error) {
	if a == math.MinInt64 || b == math.MinInt64 {
		return Bezout{}, errors.Wrapf(ErrPrecondition, "operand out of range: a=%d b=%d", a, b)
	}

	w := euclid(abs(a), abs(b))

	return Bezout{
		GCD: int64(w.gcd),
		X:   signed(w.x, w.xNeg != (a < 0)),
		Y:   signed(w.y, !w.xNeg != (b < 0)),
	}, nil
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func signed(mag uint64, neg bool) int64 {
	if neg {
		return -int64(mag)
	}
	return int64(mag)
}
