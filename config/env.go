package config

import "os"

const (
	Key        = "APP_ENV"
	DefaultEnv = "local"
)

// GetAppEnv 環境変数取得。未設定なら DefaultEnv
func GetAppEnv() string {
	if env := os.Getenv(Key); env != "" {
		return env
	}
	return DefaultEnv
}
