package users

import (
	"fmt"
	"strconv"

	"github.com/nao1215/storefront/pkg/env"
)

// ServiceName はusers-apiのサービス名。ヘルスチェックのレスポンスに含める。
const ServiceName = "users-api"

// Config はusers-apiの起動設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// AllowedOrigins はCORSで許可するオリジン。
	AllowedOrigins []string
}

// LoadConfig は環境変数から設定を読み込む。
func LoadConfig() Config {
	return Config{
		Port:           env.GetOr("PORT", "8000"),
		AllowedOrigins: env.List("CORS_ALLOWED_ORIGINS"),
	}
}

// Validate は設定値を検証する。
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORTには0から65535の整数を指定してください: %q", c.Port)
	}
	return nil
}
