package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// defaultTimeout はオプション未指定時のリクエストタイムアウト。
const defaultTimeout = 30 * time.Second

// maxErrorBodySize はStatusErrorに保持するレスポンスボディの上限（バイト）。
const maxErrorBodySize = 4096

var (
	// ErrUnavailable は接続先サービスにリクエストが届かなかったことを表す。
	// 接続拒否、タイムアウト、名前解決の失敗、コンテキストのキャンセルが該当する。
	ErrUnavailable = errors.New("接続先サービスに到達できません")
	// ErrInvalidResponse は2xxレスポンスのボディをデシリアライズできなかったことを表す。
	ErrInvalidResponse = errors.New("接続先サービスのレスポンスが不正です")
)

// StatusError は接続先サービスが2xx以外のステータスを返したことを表す。
type StatusError struct {
	// StatusCode は接続先が返したHTTPステータスコード。
	StatusCode int
	// Body はレスポンスボディの先頭部分。
	Body string
}

// Error はエラーメッセージを返す。
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTPエラー: status=%d, body=%s", e.StatusCode, e.Body)
}

// Client はサービス間通信用のHTTPクライアント。
// リトライは行わず、1回の呼び出しにつき1回だけリクエストを送信する。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先サービスのベースURL。
	baseURL string
}

// Option はClientの設定を変更する関数。
type Option func(*Client)

// WithTimeout はリクエスト全体（接続からボディ読み込みまで）のタイムアウトを設定する。
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New は新しいサービス間通信用HTTPクライアントを生成する。
// baseURLには接続先サービスのベースURL（例: "http://users-api:8000"）を指定する。
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL は接続先サービスのベースURLを返す。
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON は指定パスにGETリクエストを送信する。
// resultがnilでなければレスポンスボディをresultにデシリアライズする。
//
// 返すエラーは次のいずれかで判別できる。
//   - *StatusError: 2xx以外のレスポンス
//   - ErrUnavailable: リクエストが完了しなかった
//   - ErrInvalidResponse: 2xxだがボディが不正
func (c *Client) GetJSON(ctx context.Context, path string, result any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: HTTPリクエストの作成に失敗: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	// コンテキストからリクエストIDを伝播する
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok && requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			if isTransportError(ctx, err) {
				return fmt.Errorf("%w: レスポンスボディの読み込みに失敗: %w", ErrUnavailable, err)
			}
			return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
	}
	return nil
}

// isTransportError はボディ読み込み中のエラーが通信の失敗によるものかを判定する。
// タイムアウトやキャンセルで読み込みが打ち切られた場合はボディの不正とは扱わない。
func isTransportError(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// HeaderRequestID はサービス間でリクエストIDを伝播するためのHTTPヘッダーキー。
const HeaderRequestID = "X-Request-ID"

// contextKey はコンテキストキーの型。
type contextKey string

// contextKeyRequestID はコンテキストにリクエストIDを格納するためのキー。
const contextKeyRequestID contextKey = "request_id"

// WithRequestID はコンテキストにリクエストIDを設定する。
// 設定したIDはX-Request-IDヘッダーとして接続先に送信される。
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}
