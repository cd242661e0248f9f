package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nao1215/storefront/pkg/httpclient"
)

// HeaderRequestID はリクエストIDを受け渡すHTTPヘッダーキー。
const HeaderRequestID = httpclient.HeaderRequestID

// keyRequestID はGinコンテキストにリクエストIDを格納するためのキー。
const keyRequestID = "request_id"

// RequestID はリクエストIDを採番するGinミドルウェアを返す。
// X-Request-IDヘッダーがあればその値を引き継ぎ、無ければUUIDを生成する。
// 採番したIDはレスポンスヘッダーにも設定する。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(keyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID はGinコンテキストからリクエストIDを取得する。
// RequestIDミドルウェアが適用されていない場合は空文字列を返す。
func GetRequestID(c *gin.Context) string {
	return c.GetString(keyRequestID)
}

// OutgoingContext はリクエストIDを引き継いだ、サービス間通信用のコンテキストを返す。
// 元のリクエストがキャンセルされると、派生したリクエストもキャンセルされる。
func OutgoingContext(c *gin.Context) context.Context {
	return httpclient.WithRequestID(c.Request.Context(), GetRequestID(c))
}
