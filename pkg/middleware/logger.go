package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// Logger はgin.DefaultWriterにアクセスログを出力するGinミドルウェアを返す。
func Logger() gin.HandlerFunc {
	return LoggerTo(gin.DefaultWriter)
}

// LoggerTo は指定したWriterにアクセスログを出力するGinミドルウェアを返す。
// gin.Logger()の書式にリクエストIDを加えたもの。
func LoggerTo(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatAccessLog,
		Output:    out,
	})
}

// formatAccessLog は1リクエスト分のアクセスログ行を組み立てる。
func formatAccessLog(p gin.LogFormatterParams) string {
	requestID, _ := p.Keys[keyRequestID].(string)
	if requestID == "" {
		requestID = "-"
	}
	return fmt.Sprintf("[GIN] %s | %3d | %13v | %15s | %-7s %#v | request_id=%s\n%s",
		p.TimeStamp.Format("2006/01/02 - 15:04:05"),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		p.Path,
		requestID,
		p.ErrorMessage,
	)
}
