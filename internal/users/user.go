package users

// Role はユーザーの権限種別を表す。
type Role string

const (
	// RoleCustomer は一般の購入者を表す。
	RoleCustomer Role = "customer"
	// RoleAdmin は管理者を表す。
	RoleAdmin Role = "admin"
)

// User はユーザーディレクトリの1レコード。
// JSONのフィールド名はorders-apiなど他サービスとの互換性のため変更しないこと。
type User struct {
	// ID はユーザーの一意識別子。
	ID int `json:"id"`
	// Name は表示名。
	Name string `json:"name"`
	// Email は連絡先メールアドレス。
	Email string `json:"email"`
	// Role はユーザーの権限種別。
	Role Role `json:"role"`
	// CreatedAt は作成日（YYYY-MM-DD）。
	CreatedAt string `json:"created_at"`
}

// directory はプロセス起動時に構築される固定のユーザーテーブル。
// 宣言順が一覧APIの返却順になる。
var directory = []User{
	{ID: 1, Name: "Juan Pérez", Email: "juan@example.com", Role: RoleCustomer, CreatedAt: "2024-01-15"},
	{ID: 2, Name: "María García", Email: "maria@example.com", Role: RoleCustomer, CreatedAt: "2024-02-20"},
	{ID: 3, Name: "Carlos López", Email: "carlos@example.com", Role: RoleAdmin, CreatedAt: "2024-03-10"},
	{ID: 4, Name: "Ana Martínez", Email: "ana@example.com", Role: RoleCustomer, CreatedAt: "2024-04-05"},
}

// Directory は読み取り専用のユーザーテーブル。
type Directory struct {
	users []User
}

// NewDirectory は指定したレコードからテーブルを構築する。
// 呼び出し元のスライスは複製するので、構築後に変更しても影響しない。
func NewDirectory(users []User) *Directory {
	return &Directory{users: append([]User(nil), users...)}
}

// DefaultDirectory は組み込みのユーザーテーブルを返す。
func DefaultDirectory() *Directory {
	return NewDirectory(directory)
}

// List は全ユーザーを宣言順で返す。返したスライスを変更してもテーブルには影響しない。
// ユーザーが0件でもnilではなく空スライスを返す。
func (d *Directory) List() []User {
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

// Get は指定したIDのユーザーを返す。存在しない場合はfalseを返す。
func (d *Directory) Get(id int) (User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Len はユーザー数を返す。
func (d *Directory) Len() int {
	return len(d.users)
}
