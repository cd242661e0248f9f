package orders

import (
	"fmt"
	"net/http"
)

// UpstreamNotFoundError はusers-apiが対象ユーザーを404で返したことを表す。
// 注文自体が見つからない場合とは区別する。
type UpstreamNotFoundError struct {
	// UserID はusers-apiに問い合わせたユーザーID。
	UserID int
}

// Error はエラーメッセージを返す。
func (e *UpstreamNotFoundError) Error() string {
	return fmt.Sprintf("ID %d のユーザーが見つかりません", e.UserID)
}

// UpstreamError はusers-apiに到達できたが、想定外の応答だったことを表す。
// StatusCodeが0の場合は2xxだがボディを解釈できなかったことを表す。
type UpstreamError struct {
	// StatusCode はusers-apiが返したステータスコード。
	StatusCode int
	// Err は元のエラー。
	Err error
}

// Error はエラーメッセージを返す。
func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("users-apiのレスポンスが不正です: %v", e.Err)
	}
	return fmt.Sprintf("users-apiがエラーを返しました: status=%d", e.StatusCode)
}

// Unwrap は元のエラーを返す。
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus は自サービスが返すステータスコードを返す。
// 上流の4xx/5xxはそのまま伝播し、それ以外は502とする。
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode >= http.StatusBadRequest {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// UpstreamUnavailableError はusers-apiへのリクエストが完了しなかったことを表す。
// 接続拒否、タイムアウト、名前解決の失敗などが該当する。
type UpstreamUnavailableError struct {
	// Err は通信エラー。
	Err error
}

// Error はエラーメッセージを返す。
func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("users-apiとの通信に失敗しました: %v", e.Err)
}

// Unwrap は元のエラーを返す。
func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// orderNotFoundDetail は注文が見つからない場合のエラーメッセージ。
func orderNotFoundDetail(orderID int) string {
	return fmt.Sprintf("ID %d の注文が見つかりません", orderID)
}

// userOrdersNotFoundDetail はユーザーの注文が1件も無い場合のエラーメッセージ。
func userOrdersNotFoundDetail(userID int) string {
	return fmt.Sprintf("ユーザー %d の注文が見つかりません", userID)
}
