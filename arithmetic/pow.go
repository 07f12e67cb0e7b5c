package arithmetic

import "github.com/cockroachdb/errors"

// ModExp 冪乗のMod(繰り返し二乗法)
// exp == 0 の場合は base に関わらず 1 % mod を返す。mod == 0 は ErrPrecondition。
func ModExp(base, exp, mod uint64) (uint64, error) {
	if mod == 0 {
		return 0, errors.Wrap(ErrPrecondition, "modulus must be positive")
	}
	return modExp(base, exp, mod), nil
}

// modExp mod > 0 が保証されている内部用
func modExp(base, exp, mod uint64) uint64 {
	// mod == 1 のとき 0 になる
	result := 1 % mod
	base %= mod

	for exp > 0 {
		// ビット演算 1桁目を確認
		if exp&1 == 1 {
			result = MulMod(result, base, mod)
		}

		base = MulMod(base, base, mod)

		// 右へ1bitずらす。1101 -> 110
		exp >>= 1
	}
	return result
}
