package users

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/storefront/pkg/middleware"
)

// Server はusers-apiのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// directory は読み取り専用のユーザーテーブル。
	directory *Directory
	// now は現在時刻を返す関数。テストで差し替える。
	now func() time.Time
}

// NewServer は新しいusers-apiサーバーを生成する。
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定が不正です: %w", err)
	}
	return newServer(cfg, DefaultDirectory()), nil
}

// newServer は指定したユーザーテーブルでサーバーを生成する。
func newServer(cfg Config, directory *Directory) *Server {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:    router,
		port:      cfg.Port,
		directory: directory,
		now:       time.Now,
	}
	s.setupRoutes()

	return s
}

// Handler はサーバーのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	users := s.router.Group("/users")
	{
		// ユーザー一覧取得
		users.GET("", s.handleList())
		// ユーザー詳細取得
		users.GET("/:id", s.handleGetByID())
	}

	// ヘルスチェック
	s.router.GET("/", s.handleHealth())
	s.router.GET("/health", s.handleDetailedHealth())
}

// handleHealth はサービスの生存確認を返すハンドラを返す。
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   ServiceName,
			"status":    "healthy",
			"timestamp": s.now().Format(time.RFC3339Nano),
		})
	}
}

// handleDetailedHealth はユーザー数を含む詳細なヘルスチェックを返すハンドラを返す。
// 外部依存が無いので常に成功する。
func (s *Server) handleDetailedHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     ServiceName,
			"status":      "healthy",
			"total_users": s.directory.Len(),
			"timestamp":   s.now().Format(time.RFC3339Nano),
		})
	}
}

// handleList はユーザー一覧取得を処理するハンドラを返す。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.directory.List())
	}
}

// handleGetByID はユーザー詳細取得を処理するハンドラを返す。
func (s *Server) handleGetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := middleware.IntParam(c, "id")
		if !ok {
			return
		}

		user, found := s.directory.Get(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("ID %d のユーザーが見つかりません", id)})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
