package arithmetic

// IsPrime 6k±1 の試し割りによる決定的な素数判定。
//
// 計算量は O(√n) で、中程度の n を想定している。2^64 付近では数十億回の除算になるため、
// 暗号用途の大きな素数を扱う場合は Miller-Rabin などの確率的判定に置き換えること。
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// i*i <= n だと i*i が溢れる可能性があるので i <= n/i で比較する
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
