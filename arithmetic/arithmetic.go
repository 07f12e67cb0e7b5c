package arithmetic

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.WithFields(logrus.Fields{
		"app":       "valley_modarith",
		"component": "arithmetic",
	})
)

// ErrPrecondition 入力が関数の前提条件を満たしていない場合のエラー (例: 法が0, 奇素数でない法)
var ErrPrecondition = errors.New("precondition violation")

// ErrNoInverse gcd(a, m) != 1 のため逆元が存在しない場合のエラー
var ErrNoInverse = errors.New("modular inverse does not exist")

// ErrOverflow 結果が64bitに収まらない場合のエラー
var ErrOverflow = errors.New("result overflows 64 bits")

// Gcd 最大公約数を求める
func Gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
