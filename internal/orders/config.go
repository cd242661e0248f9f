package orders

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/storefront/pkg/env"
)

// ServiceName はorders-apiのサービス名。ヘルスチェックのレスポンスに含める。
const ServiceName = "orders-api"

const (
	// DefaultUsersAPIURL はusers-apiのクラスタ内アドレスの既定値。
	DefaultUsersAPIURL = "http://users-api:8000"
	// DefaultRequestTimeout は合成エンドポイントでのusers-api呼び出しのタイムアウト。
	DefaultRequestTimeout = 5 * time.Second
	// DefaultHealthTimeout はヘルスチェックでのusers-api疎通確認のタイムアウト。
	DefaultHealthTimeout = 2 * time.Second
)

// Config はorders-apiの起動設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// UsersAPIURL はusers-apiのベースURL。
	UsersAPIURL string
	// RequestTimeout は合成エンドポイントでのusers-api呼び出しのタイムアウト。
	RequestTimeout time.Duration
	// HealthTimeout はヘルスチェックでのusers-api疎通確認のタイムアウト。
	// RequestTimeoutより短くなければならない。
	HealthTimeout time.Duration
	// AllowedOrigins はCORSで許可するオリジン。
	AllowedOrigins []string
}

// LoadConfig は環境変数から設定を読み込み、検証する。
func LoadConfig() (Config, error) {
	requestTimeout, err := env.DurationOr("USERS_API_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return Config{}, err
	}
	healthTimeout, err := env.DurationOr("USERS_API_HEALTH_TIMEOUT", DefaultHealthTimeout)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:           env.GetOr("PORT", "8000"),
		UsersAPIURL:    env.GetOr("USERS_API_URL", DefaultUsersAPIURL),
		RequestTimeout: requestTimeout,
		HealthTimeout:  healthTimeout,
		AllowedOrigins: env.List("CORS_ALLOWED_ORIGINS"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を検証する。
func (c Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORTには0から65535の整数を指定してください: %q", c.Port)
	}
	u, err := url.Parse(c.UsersAPIURL)
	if err != nil {
		return fmt.Errorf("USERS_API_URLの解析に失敗: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("USERS_API_URLのスキームはhttpまたはhttpsを指定してください: %q", c.UsersAPIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("USERS_API_URLにホストが含まれていません: %q", c.UsersAPIURL)
	}
	if c.RequestTimeout <= 0 || c.HealthTimeout <= 0 {
		return fmt.Errorf("タイムアウトには正の値を指定してください: request=%v, health=%v", c.RequestTimeout, c.HealthTimeout)
	}
	if c.HealthTimeout >= c.RequestTimeout {
		return fmt.Errorf("ヘルスチェックのタイムアウト(%v)は通常のタイムアウト(%v)より短くしてください", c.HealthTimeout, c.RequestTimeout)
	}
	return nil
}

// usersAPIBaseURL は末尾のスラッシュを取り除いたusers-apiのベースURLを返す。
func (c Config) usersAPIBaseURL() string {
	return strings.TrimRight(c.UsersAPIURL, "/")
}
