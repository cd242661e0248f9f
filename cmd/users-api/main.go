// users-apiサービスのエントリポイント。
// 固定のユーザーディレクトリを読み取り専用で公開する。
package main

import (
	"log"

	"github.com/nao1215/storefront/internal/users"
)

func main() {
	cfg := users.LoadConfig()

	server, err := users.NewServer(cfg)
	if err != nil {
		log.Fatalf("users-apiサーバーの初期化に失敗: %v", err)
	}

	log.Printf("users-apiサービスを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("users-apiサービスの起動に失敗: %v", err)
	}
}
