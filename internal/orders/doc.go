// Package orders はorders-api（注文カタログサービス）の内部実装を提供する。
//
// 固定の注文テーブルに対する読み取り専用APIに加え、注文の所有ユーザーを
// users-apiからHTTPで取得して合成するエンドポイントを提供する。
// users-apiの所在は環境変数USERS_API_URLで指定し、クラスタ内DNS名
// （既定値 http://users-api:8000）で解決する。
//
// users-api呼び出しの結果は次のように自サービスの応答へ変換する。
//   - 404: ユーザー未検出として404
//   - その他の2xx以外: 上流のステータスを伝播（400未満なら502）
//   - 通信失敗（接続拒否、タイムアウト、名前解決失敗）: 503
//
// リトライとキャッシュは行わない。合成リクエスト1件につき、users-apiへの
// 呼び出しは必ず1回。
package orders
