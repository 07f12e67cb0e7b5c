package config

import (
	"log"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const configDir = "configs"

// ErrInvalidConfig 設定値が不正な場合のエラー
var ErrInvalidConfig = errors.New("invalid config")

// Config ツールキットのバッチ処理用の設定
type Config struct {
	Residue ResidueConfig `mapstructure:"residue"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Log     LogConfig     `mapstructure:"log"`
}

// ResidueConfig 平方根の総当たり探索は O(p) なので受け付ける法の上限を決めておく
type ResidueConfig struct {
	MaxSearchModulus uint64 `mapstructure:"max_search_modulus"`
}

// BatchConfig 並列数
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	defaultMaxSearchModulus uint64 = 1 << 24
	defaultConcurrency             = 4
	defaultLogLevel                = "info"
)

// defaults YAMLや環境変数に無いキーの値
var defaults = map[string]any{
	"residue.max_search_modulus": defaultMaxSearchModulus,
	"batch.concurrency":          defaultConcurrency,
	"log.level":                  defaultLogLevel,
}

// Default 設定ファイルなしで使う場合の初期値
func Default() *Config {
	return &Config{
		Residue: ResidueConfig{MaxSearchModulus: defaultMaxSearchModulus},
		Batch:   BatchConfig{Concurrency: defaultConcurrency},
		Log:     LogConfig{Level: defaultLogLevel},
	}
}

// Read は環境変数とYAMLファイルから新規のコンフィグを取得。失敗時は終了する
func Read() *Config {
	return ReadWithConfigDirPath(configDir)
}

// ReadWithConfigDirPath は環境変数と指定の設定ディレクトリ名とYAMLファイルから新規のコンフィグを取得
func ReadWithConfigDirPath(cfgDirPath string) *Config {
	cfg, err := Load(cfgDirPath)
	if err != nil {
		log.Fatalf("get config error: %s \n", err)
	}
	return cfg
}

// Load APP_ENV と同名のYAMLを cfgDirPath から読み込んで検証する
func Load(cfgDirPath string) (*Config, error) {
	cfg := &Config{}
	if err := read(cfg, GetAppEnv(), cfgDirPath); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 値の範囲チェック
func (c *Config) Validate() error {
	if c.Residue.MaxSearchModulus < 3 {
		return errors.Wrapf(ErrInvalidConfig, "residue.max_search_modulus must be >= 3: %d", c.Residue.MaxSearchModulus)
	}
	// errgroup.SetLimit(0) は Go が一切実行できなくなる
	if c.Batch.Concurrency <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "batch.concurrency must be positive: %d", c.Batch.Concurrency)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log.level: %v", err)
	}
	return nil
}

// ConfigureLogger log.level を logrus の標準ロガーに反映する
func (c *Config) ConfigureLogger() error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log.level: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// read はconfigの読み込みを実施
func read(cfg any, cfgName string, cfgDirPath string) error {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// RESIDUE_MAX_SEARCH_MODULUS のようにネストしたキーを環境変数で上書きできる
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(cfgName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfgDirPath)

	if err := v.ReadInConfig(); err != nil {
		return errors.Errorf("read cfg error: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Errorf("parse cfg error: %w", err)
	}
	return nil
}
