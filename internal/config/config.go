package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	StoragePath string // プロファイル保存先（sqliteファイル）

	JWTSecret  string        // クレデンシャル署名シークレット
	TokenTTL   time.Duration // クレデンシャルの有効期限
	LoginDelay time.Duration // ログインの擬似待ち時間

	GeminiAPIKey string // レコメンド用APIキー（空ならレコメンド無効）
	GeminiModel  string

	GoEnv    string // dev/prod
	LogLevel string
}

// Loadは環境変数から設定を読む。単一プロファイルのローカル用途なので、
// 未設定はデフォルトに倒す。
func Load() (Config, error) {
	delayMs, err := atoiDefault("LOGIN_DELAY_MS", 500)
	if err != nil {
		return Config{}, err
	}
	ttlMin, err := atoiDefault("TOKEN_TTL_MIN", 15)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		StoragePath: getenv("STORAGE_PATH", "shopstream.db"),

		JWTSecret:  getenv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:   time.Duration(ttlMin) * time.Minute,
		LoginDelay: time.Duration(delayMs) * time.Millisecond,

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),

		GoEnv:    getenv("GO_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
