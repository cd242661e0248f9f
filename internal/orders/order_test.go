package orders

import (
	"math"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("組み込みテーブルは5件を宣言順で保持すること", func(t *testing.T) {
		t.Parallel()
		c := DefaultCatalog()

		got := c.List()
		wantIDs := []int{101, 102, 103, 104, 105}
		if len(got) != len(wantIDs) || c.Len() != len(wantIDs) {
			t.Fatalf("件数: List=%d, Len=%d, want %d", len(got), c.Len(), len(wantIDs))
		}
		for i, id := range wantIDs {
			if got[i].ID != id {
				t.Errorf("orders[%d].ID: got %d, want %d", i, got[i].ID, id)
			}
		}
	})

	t.Run("Listの戻り値を変更してもテーブルに影響しないこと", func(t *testing.T) {
		t.Parallel()
		c := DefaultCatalog()

		got := c.List()
		got[0].Product = "改ざん"

		if o, _ := c.Get(101); o.Product != "Laptop Dell XPS" {
			t.Errorf("テーブルが変更された: %+v", o)
		}
	})

	t.Run("NewCatalogは元のスライスを複製すること", func(t *testing.T) {
		t.Parallel()
		src := []Order{{ID: 1, UserID: 1, Total: 10}}
		c := NewCatalog(src)
		src[0].Total = 99

		if o, _ := c.Get(1); o.Total != 10 {
			t.Errorf("Total: got %v, want 10", o.Total)
		}
	})

	t.Run("空のテーブルでもnilではなく空スライスを返すこと", func(t *testing.T) {
		t.Parallel()
		c := NewCatalog(nil)

		if got := c.List(); got == nil || len(got) != 0 {
			t.Errorf("List: got %#v", got)
		}
		if got := c.ByUser(1); got == nil || len(got) != 0 {
			t.Errorf("ByUser: got %#v", got)
		}
	})

	t.Run("Getは存在しないIDでfalseを返すこと", func(t *testing.T) {
		t.Parallel()
		if _, ok := DefaultCatalog().Get(999); ok {
			t.Error("存在しないIDでtrueが返った")
		}
	})

	t.Run("ByUserはユーザーの注文だけを宣言順で返すこと", func(t *testing.T) {
		t.Parallel()
		c := DefaultCatalog()

		tests := []struct {
			userID int
			want   []int
		}{
			{userID: 1, want: []int{101, 103}},
			{userID: 2, want: []int{102}},
			{userID: 3, want: []int{104}},
			{userID: 4, want: []int{105}},
			{userID: 5, want: []int{}},
		}
		for _, tt := range tests {
			got := c.ByUser(tt.userID)
			if len(got) != len(tt.want) {
				t.Errorf("ユーザー %d の件数: got %d, want %d", tt.userID, len(got), len(tt.want))
				continue
			}
			for i, id := range tt.want {
				if got[i].ID != id || got[i].UserID != tt.userID {
					t.Errorf("ユーザー %d の orders[%d]: got %+v, want ID %d", tt.userID, i, got[i], id)
				}
			}
		}
	})
}

func TestTotalSpent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		orders []Order
		want   float64
	}{
		{name: "ユーザー1の合計", orders: DefaultCatalog().ByUser(1), want: 1429.98},
		{name: "1件", orders: DefaultCatalog().ByUser(2), want: 49.98},
		{name: "0件", orders: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TotalSpent(tt.orders); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TotalSpent: got %v, want %v", got, tt.want)
			}
		})
	}
}
