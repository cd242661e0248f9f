package orders

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/storefront/pkg/middleware"
)

// Server はorders-apiのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// catalog は読み取り専用の注文テーブル。
	catalog *Catalog
	// users はusers-apiへのHTTPアクセス。
	users *usersAPI
	// now は現在時刻を返す関数。テストで差し替える。
	now func() time.Time
}

// NewServer は新しいorders-apiサーバーを生成する。
// users-apiに到達できなくても起動は失敗させない。
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定が不正です: %w", err)
	}
	return newServer(cfg, DefaultCatalog()), nil
}

// newServer は指定した注文テーブルでサーバーを生成する。
func newServer(cfg Config, catalog *Catalog) *Server {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:  router,
		port:    cfg.Port,
		catalog: catalog,
		users:   newUsersAPI(cfg.usersAPIBaseURL(), cfg.RequestTimeout, cfg.HealthTimeout),
		now:     time.Now,
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
	orders := s.router.Group("/orders")
	{
		// 注文一覧取得
		orders.GET("", s.handleList())
		// 注文詳細取得
		orders.GET("/:id", s.handleGetByID())
		// 注文詳細とユーザー情報の取得（users-apiを呼び出す）
		orders.GET("/:id/details", s.handleGetWithUser())
		// ユーザーの注文一覧取得
		orders.GET("/user/:user_id", s.handleListByUser())
		// ユーザー情報と注文集計の取得（users-apiを呼び出す）
		orders.GET("/user/:user_id/full", s.handleUserOrdersWithDetails())
	}

	// ヘルスチェック
	s.router.GET("/", s.handleHealth())
	s.router.GET("/health", s.handleDetailedHealth())
}

// orderWithUserResponse は注文とユーザー情報を合成したレスポンス。
type orderWithUserResponse struct {
	// Order はローカルの注文レコード。
	Order Order `json:"order"`
	// User はusers-apiから取得したユーザー情報。内容は検証せずそのまま返す。
	User map[string]any `json:"user"`
}

// userOrdersResponse はユーザー情報と注文の集計を合成したレスポンス。
type userOrdersResponse struct {
	// User はusers-apiから取得したユーザー情報。
	User map[string]any `json:"user"`
	// Orders はユーザーの注文一覧。
	Orders []Order `json:"orders"`
	// TotalOrders は注文数。
	TotalOrders int `json:"total_orders"`
	// TotalSpent は注文の合計金額。
	TotalSpent float64 `json:"total_spent"`
}

// handleHealth はサービスの生存確認を返すハンドラを返す。
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":       ServiceName,
			"status":        "healthy",
			"users_api_url": s.users.baseURL(),
			"timestamp":     s.now().Format(time.RFC3339Nano),
		})
	}
}

// handleDetailedHealth はusers-apiとの疎通を含む詳細なヘルスチェックを返すハンドラを返す。
// users-apiの状態は参考情報であり、どの状態でも200を返す。
func (s *Server) handleDetailedHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		connection := s.users.probe(middleware.OutgoingContext(c))
		if connection != ConnectionHealthy {
			log.Printf("users-apiの疎通確認結果: %s (url=%s)", connection, s.users.baseURL())
		}

		c.JSON(http.StatusOK, gin.H{
			"service":              ServiceName,
			"status":               "healthy",
			"total_orders":         s.catalog.Len(),
			"users_api_connection": connection,
			"users_api_url":        s.users.baseURL(),
			"timestamp":            s.now().Format(time.RFC3339Nano),
		})
	}
}

// handleList は注文一覧取得を処理するハンドラを返す。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.catalog.List())
	}
}

// handleGetByID は注文詳細取得を処理するハンドラを返す。
func (s *Server) handleGetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := middleware.IntParam(c, "id")
		if !ok {
			return
		}

		order, found := s.catalog.Get(orderID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"detail": orderNotFoundDetail(orderID)})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// handleGetWithUser は注文とその所有ユーザーを合成して返すハンドラを返す。
// 注文をローカルで検索した後、users-apiからユーザー情報を1回だけ取得する。
func (s *Server) handleGetWithUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := middleware.IntParam(c, "id")
		if !ok {
			return
		}

		order, found := s.catalog.Get(orderID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"detail": orderNotFoundDetail(orderID)})
			return
		}

		user, err := s.users.fetchUser(middleware.OutgoingContext(c), order.UserID)
		if err != nil {
			writeUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, orderWithUserResponse{Order: order, User: user})
	}
}

// handleListByUser はユーザーの注文一覧取得を処理するハンドラを返す。
// 注文が1件も無い場合は、ユーザーの存在に関わらず404を返す。
func (s *Server) handleListByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.IntParam(c, "user_id")
		if !ok {
			return
		}

		orders := s.catalog.ByUser(userID)
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"detail": userOrdersNotFoundDetail(userID)})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// handleUserOrdersWithDetails はユーザー情報と注文の集計を合成して返すハンドラを返す。
// 注文が1件も無い場合はusers-apiを呼び出さずに404を返す。
func (s *Server) handleUserOrdersWithDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.IntParam(c, "user_id")
		if !ok {
			return
		}

		orders := s.catalog.ByUser(userID)
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"detail": userOrdersNotFoundDetail(userID)})
			return
		}

		user, err := s.users.fetchUser(middleware.OutgoingContext(c), userID)
		if err != nil {
			writeUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, userOrdersResponse{
			User:        user,
			Orders:      orders,
			TotalOrders: len(orders),
			TotalSpent:  TotalSpent(orders),
		})
	}
}

// writeUpstreamError はusers-api呼び出しのエラーをレスポンスに変換する。
func writeUpstreamError(c *gin.Context, err error) {
	var (
		notFound    *UpstreamNotFoundError
		upstreamErr *UpstreamError
	)

	status := http.StatusServiceUnavailable
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &upstreamErr):
		status = upstreamErr.HTTPStatus()
	}

	if status != http.StatusNotFound {
		log.Printf("users-api呼び出しエラー: request_id=%s, status=%d, error=%v", middleware.GetRequestID(c), status, err)
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}
