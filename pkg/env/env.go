// Package env は環境変数から設定値を読み込むヘルパーを提供する。
package env

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// GetOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func GetOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// DurationOr は環境変数をtime.ParseDurationの書式（例: "5s"）で解釈する。
// 設定されていない場合はデフォルト値を返す。0以下の値はエラーとする。
func DurationOr(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("環境変数 %s の値 %q を時間として解釈できません: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("環境変数 %s には正の時間を指定してください: %q", key, v)
	}
	return d, nil
}

// List はカンマ区切りの環境変数を空白を除いたスライスとして返す。
// 空の要素は無視する。
func List(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
