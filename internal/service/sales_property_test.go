package service

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/nvilela/salesledger/internal/domain"
)

func TestProperty_ListOrdersFilterCorrectness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		env := newTestSalesEnv()
		env.addProduct(t, "P-1", "Product", 10)

		customers := []string{"Mark Spencer", "Ella Fitzgerald", "Robert Frost", "Marta Silva"}

		n := rapid.IntRange(1, 12).Draw(t, "numOrders")
		for i := 0; i < n; i++ {
			customer := rapid.SampledFrom(customers).Draw(t, fmt.Sprintf("customer%d", i))
			o, err := env.svc.RecordSale(RecordSaleRequest{
				Customer: customer,
				Items:    []SaleItemInput{{ProductID: "P-1", Quantity: 1}},
			})
			if err != nil {
				t.Fatalf("record sale: %v", err)
			}
			if rapid.Bool().Draw(t, fmt.Sprintf("completed%d", i)) {
				if _, err := env.svc.CompleteOrder(o.OrderID); err != nil {
					t.Fatalf("complete order: %v", err)
				}
			}
		}

		status := domain.OrderStatus(rapid.SampledFrom([]string{"open", "completed"}).Draw(t, "status"))
		query := rapid.SampledFrom([]string{"", "mar", "ELLA", "o-1", "zzz"}).Draw(t, "query")

		got, err := env.svc.ListOrders(&status, query)
		if err != nil {
			t.Fatalf("list orders: %v", err)
		}

		// Recompute the expected set from the unfiltered listing.
		all, err := env.svc.ListOrders(nil, "")
		if err != nil {
			t.Fatalf("list all orders: %v", err)
		}
		q := strings.ToLower(query)
		want := make([]*domain.Order, 0)
		for _, o := range all {
			if o.Status != status {
				continue
			}
			if q != "" &&
				!strings.Contains(strings.ToLower(o.OrderID), q) &&
				!strings.Contains(strings.ToLower(o.Customer), q) {
				continue
			}
			want = append(want, o)
		}

		if len(got) != len(want) {
			t.Fatalf("filter returned %d orders, recomputed %d", len(got), len(want))
		}
		for i := range got {
			if got[i].OrderID != want[i].OrderID {
				t.Fatalf("order %d: got %s, want %s", i, got[i].OrderID, want[i].OrderID)
			}
		}

		// Listing must be a pure query: calling it twice yields the same result.
		again, err := env.svc.ListOrders(&status, query)
		if err != nil {
			t.Fatalf("second list: %v", err)
		}
		if len(again) != len(got) {
			t.Fatalf("second listing differs: %d vs %d", len(again), len(got))
		}
	})
}
