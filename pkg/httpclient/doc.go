// Package httpclient はサービス間のHTTP通信を行うクライアントを提供する。
//
// orders-apiがusers-apiのAPIを呼び出す際に使用する。
// タイムアウト、エラーの分類、リクエストIDの伝播など、
// サービス間の通信パターンを統一する。
package httpclient
