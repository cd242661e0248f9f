package orders

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nao1215/storefront/pkg/httpclient"
)

// ConnectionStatus はヘルスチェックで報告するusers-apiへの接続状態。
type ConnectionStatus string

const (
	// ConnectionUnknown は疎通確認を行えなかった状態。
	ConnectionUnknown ConnectionStatus = "unknown"
	// ConnectionHealthy はusers-apiが2xxを返したことを表す。
	ConnectionHealthy ConnectionStatus = "healthy"
	// ConnectionUnhealthy はusers-apiが2xx以外を返したことを表す。
	ConnectionUnhealthy ConnectionStatus = "unhealthy"
	// ConnectionUnreachable はusers-apiに到達できなかったことを表す。
	ConnectionUnreachable ConnectionStatus = "unreachable"
)

// usersAPI はusers-apiへのHTTPアクセスをまとめたもの。
// 合成エンドポイント用とヘルスチェック用でタイムアウトの異なるクライアントを持つ。
type usersAPI struct {
	// client は合成エンドポイントで使用するクライアント。
	client *httpclient.Client
	// probeClient はヘルスチェックで使用する短いタイムアウトのクライアント。
	probeClient *httpclient.Client
}

// newUsersAPI は新しいusersAPIを生成する。
func newUsersAPI(baseURL string, requestTimeout, healthTimeout time.Duration) *usersAPI {
	return &usersAPI{
		client:      httpclient.New(baseURL, httpclient.WithTimeout(requestTimeout)),
		probeClient: httpclient.New(baseURL, httpclient.WithTimeout(healthTimeout)),
	}
}

// baseURL はusers-apiのベースURLを返す。
func (u *usersAPI) baseURL() string {
	return u.client.BaseURL()
}

// fetchUser はusers-apiから指定したユーザーを1回だけ取得する。
// ユーザー情報のスキーマはusers-apiが所有するため、JSONオブジェクトであること以外は検証しない。
//
// 返すエラーは *UpstreamNotFoundError、*UpstreamError、*UpstreamUnavailableError のいずれか。
func (u *usersAPI) fetchUser(ctx context.Context, userID int) (map[string]any, error) {
	var user map[string]any
	err := u.client.GetJSON(ctx, fmt.Sprintf("/users/%d", userID), &user)

	var statusErr *httpclient.StatusError
	switch {
	case err == nil:
		if user == nil {
			return nil, &UpstreamError{Err: fmt.Errorf("%w: ボディがnullです", httpclient.ErrInvalidResponse)}
		}
		return user, nil
	case errors.As(err, &statusErr):
		if statusErr.StatusCode == http.StatusNotFound {
			return nil, &UpstreamNotFoundError{UserID: userID}
		}
		return nil, &UpstreamError{StatusCode: statusErr.StatusCode, Err: err}
	case errors.Is(err, httpclient.ErrInvalidResponse):
		return nil, &UpstreamError{Err: err}
	default:
		return nil, &UpstreamUnavailableError{Err: err}
	}
}

// probe はusers-apiの/healthに短いタイムアウトで問い合わせ、接続状態を返す。
// 失敗してもエラーは返さず、状態として報告する。
// 問い合わせ前に呼び出し元のリクエストが終了していた場合は確認できないのでunknownを返す。
func (u *usersAPI) probe(ctx context.Context) ConnectionStatus {
	if ctx.Err() != nil {
		return ConnectionUnknown
	}

	err := u.probeClient.GetJSON(ctx, "/health", nil)
	if err == nil {
		return ConnectionHealthy
	}
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return ConnectionUnhealthy
	}
	return ConnectionUnreachable
}
