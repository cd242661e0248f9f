package orders

// Status は注文の状態を表す。
type Status string

const (
	// StatusPending は受付済みで未処理の注文。
	StatusPending Status = "pending"
	// StatusProcessing は処理中の注文。
	StatusProcessing Status = "processing"
	// StatusShipped は発送済みの注文。
	StatusShipped Status = "shipped"
	// StatusDelivered は配達済みの注文。
	StatusDelivered Status = "delivered"
)

// Order は注文カタログの1レコード。
// UserIDはusers-apiのユーザーIDを指すが、存在は検証しない。
type Order struct {
	// ID は注文の一意識別子。
	ID int `json:"id"`
	// UserID は注文したユーザーのID。
	UserID int `json:"user_id"`
	// Product は商品名。
	Product string `json:"product"`
	// Quantity は数量。
	Quantity int `json:"quantity"`
	// Total は合計金額（小数点以下2桁）。
	Total float64 `json:"total"`
	// Status は注文の状態。
	Status Status `json:"status"`
	// CreatedAt は作成日（YYYY-MM-DD）。
	CreatedAt string `json:"created_at"`
}

// catalog はプロセス起動時に構築される固定の注文テーブル。
// 宣言順が一覧APIの返却順になる。
var catalog = []Order{
	{ID: 101, UserID: 1, Product: "Laptop Dell XPS", Quantity: 1, Total: 1299.99, Status: StatusDelivered, CreatedAt: "2024-05-01"},
	{ID: 102, UserID: 2, Product: "Mouse Logitech", Quantity: 2, Total: 49.98, Status: StatusShipped, CreatedAt: "2024-05-15"},
	{ID: 103, UserID: 1, Product: "Teclado Mecánico", Quantity: 1, Total: 129.99, Status: StatusProcessing, CreatedAt: "2024-06-01"},
	{ID: 104, UserID: 3, Product: "Monitor 27 pulgadas", Quantity: 1, Total: 399.99, Status: StatusDelivered, CreatedAt: "2024-06-10"},
	{ID: 105, UserID: 4, Product: "Webcam HD", Quantity: 1, Total: 79.99, Status: StatusPending, CreatedAt: "2024-06-20"},
}

// Catalog は読み取り専用の注文テーブル。
type Catalog struct {
	orders []Order
}

// NewCatalog は指定したレコードからテーブルを構築する。
// 呼び出し元のスライスは複製するので、構築後に変更しても影響しない。
func NewCatalog(orders []Order) *Catalog {
	return &Catalog{orders: append([]Order(nil), orders...)}
}

// DefaultCatalog は組み込みの注文テーブルを返す。
func DefaultCatalog() *Catalog {
	return NewCatalog(catalog)
}

// List は全注文を宣言順で返す。0件でも空スライスを返す。
func (c *Catalog) List() []Order {
	out := make([]Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Get は指定したIDの注文を返す。存在しない場合はfalseを返す。
func (c *Catalog) Get(id int) (Order, bool) {
	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// ByUser は指定したユーザーの注文を宣言順で返す。該当が無ければ空スライスを返す。
func (c *Catalog) ByUser(userID int) []Order {
	out := make([]Order, 0)
	for _, o := range c.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// Len は注文数を返す。
func (c *Catalog) Len() int {
	return len(c.orders)
}

// TotalSpent は注文の合計金額を宣言順に足し合わせて返す。丸めは行わない。
func TotalSpent(orders []Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.Total
	}
	return sum
}
