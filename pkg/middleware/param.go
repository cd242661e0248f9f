package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// IntParam はパスパラメータを整数として取得する。
// 整数でない場合は422と{"detail": ...}を書き込み、falseを返す。
func IntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": fmt.Sprintf("%sは整数で指定してください", name)})
		return 0, false
	}
	return v, true
}
