// orders-apiサービスのエントリポイント。
// 固定の注文テーブルを公開し、合成エンドポイントではusers-apiからユーザー情報を取得する。
// users-apiが起動していなくても起動できる。
package main

import (
	"log"

	"github.com/nao1215/storefront/internal/orders"
)

func main() {
	cfg, err := orders.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := orders.NewServer(cfg)
	if err != nil {
		log.Fatalf("orders-apiサーバーの初期化に失敗: %v", err)
	}

	log.Printf("orders-apiサービスを起動します: :%s (users-api=%s, timeout=%v)", cfg.Port, cfg.UsersAPIURL, cfg.RequestTimeout)
	if err := server.Run(); err != nil {
		log.Fatalf("orders-apiサービスの起動に失敗: %v", err)
	}
}
