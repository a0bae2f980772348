package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"budokan-backend-go/internal/models"
)

func testCatalog() []models.Product {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: "p1", Name: "Bokken", Price: decimal.RequireFromString("54.00"), Type: models.ProductWeapon, TeacherID: "t1", InStock: true, CreatedAt: created, UpdatedAt: created},
		{ID: "p2", Name: "Gi", Price: decimal.RequireFromString("89.00"), Type: models.ProductEquipment, TeacherID: "t1", InStock: true, CreatedAt: created, UpdatedAt: created},
		{ID: "p3", Name: "Print", Price: decimal.RequireFromString("120.00"), Type: models.ProductPainting, TeacherID: "t2", InStock: true, CreatedAt: created, UpdatedAt: created},
	}
}

func TestCartAddUpdateRemove(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	if err := commerce.AddToCart("u1", "p1", 0); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	cart := commerce.Cart("u1")
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", cart)
	}

	// Adding the same product again stacks quantity.
	if err := commerce.AddToCart("u1", "p1", 2); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if cart := commerce.Cart("u1"); cart[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart[0].Quantity)
	}

	commerce.UpdateQuantity("u1", "p1", 5)
	if cart := commerce.Cart("u1"); cart[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart[0].Quantity)
	}

	// Zero or negative removes the line.
	commerce.UpdateQuantity("u1", "p1", 0)
	if cart := commerce.Cart("u1"); len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}

	// Removing an absent line is a no-op.
	commerce.RemoveFromCart("u1", "p1")

	if err := commerce.AddToCart("u1", "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCreateOrderAtomic(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	if err := commerce.AddToCart("u1", "p1", 2); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := commerce.AddToCart("u1", "p2", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	before := commerce.Cart("u1")
	totalBefore := commerce.CartTotal("u1")

	order, err := commerce.CreateOrder("u1", models.BillingInfo{Name: "Mika"})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if cart := commerce.Cart("u1"); len(cart) != 0 {
		t.Fatalf("cart must be empty after checkout, got %+v", cart)
	}
	orders := commerce.UserOrders("u1")
	if len(orders) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(orders))
	}
	if len(order.Items) != len(before) {
		t.Fatalf("expected order items to match pre-call cart, got %d vs %d", len(order.Items), len(before))
	}
	for i := range before {
		if order.Items[i].Product.ID != before[i].Product.ID || order.Items[i].Quantity != before[i].Quantity {
			t.Fatalf("order item %d differs from cart snapshot", i)
		}
	}
	if !order.Total.Equal(totalBefore) {
		t.Fatalf("expected order total %s to equal pre-call cart total %s", order.Total, totalBefore)
	}
	// 2*54 + 89 = 197
	if !order.Total.Equal(decimal.RequireFromString("197.00")) {
		t.Fatalf("expected total 197.00, got %s", order.Total)
	}

	if _, err := commerce.CreateOrder("u1", models.BillingInfo{}); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderSnapshotFrozen(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	if err := commerce.AddToCart("u1", "p1", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	order, err := commerce.CreateOrder("u1", models.BillingInfo{})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	newPrice := decimal.RequireFromString("999.00")
	if _, err := commerce.UpdateProduct("t1", "p1", models.UpdateProductRequest{Price: &newPrice}); err != nil {
		t.Fatalf("update product: %v", err)
	}

	orders := commerce.UserOrders("u1")
	if !orders[0].Items[0].Product.Price.Equal(decimal.RequireFromString("54.00")) {
		t.Fatalf("catalog edit leaked into order history: %s", orders[0].Items[0].Product.Price)
	}
	if !order.Items[0].Product.Price.Equal(decimal.RequireFromString("54.00")) {
		t.Fatalf("catalog edit leaked into returned order: %s", order.Items[0].Product.Price)
	}
}

func TestCartSnapshotsProductAtAddTime(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	if err := commerce.AddToCart("u1", "p1", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	newPrice := decimal.RequireFromString("10.00")
	if _, err := commerce.UpdateProduct("t1", "p1", models.UpdateProductRequest{Price: &newPrice}); err != nil {
		t.Fatalf("update product: %v", err)
	}

	cart := commerce.Cart("u1")
	if !cart[0].Product.Price.Equal(decimal.RequireFromString("54.00")) {
		t.Fatalf("cart line must keep the add-time snapshot, got %s", cart[0].Product.Price)
	}
}

func TestUserOrdersNewestFirst(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	commerce.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Hour)
	}

	for i := 0; i < 3; i++ {
		if err := commerce.AddToCart("u1", "p1", 1); err != nil {
			t.Fatalf("add to cart: %v", err)
		}
		if _, err := commerce.CreateOrder("u1", models.BillingInfo{}); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	orders := commerce.UserOrders("u1")
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].CreatedAt.After(orders[i-1].CreatedAt) {
			t.Fatalf("orders not sorted newest first: %v before %v", orders[i-1].CreatedAt, orders[i].CreatedAt)
		}
	}
}

func TestPurchasedProductsDeduplicated(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	// First order with p1 at the original price.
	if err := commerce.AddToCart("u1", "p1", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if _, err := commerce.CreateOrder("u1", models.BillingInfo{}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Reprice, then order p1 again plus p2.
	newPrice := decimal.RequireFromString("60.00")
	if _, err := commerce.UpdateProduct("t1", "p1", models.UpdateProductRequest{Price: &newPrice}); err != nil {
		t.Fatalf("update product: %v", err)
	}
	if err := commerce.AddToCart("u1", "p1", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := commerce.AddToCart("u1", "p2", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if _, err := commerce.CreateOrder("u1", models.BillingInfo{}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	purchased := commerce.UserPurchasedProducts("u1")
	if len(purchased) != 2 {
		t.Fatalf("expected 2 distinct products, got %d", len(purchased))
	}
	for _, p := range purchased {
		if p.ID == "p1" && !p.Price.Equal(decimal.RequireFromString("54.00")) {
			t.Fatalf("first-seen order snapshot must win, got price %s", p.Price)
		}
	}
}

func TestTeacherSalesFilter(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	// Order containing only teacher t2's product.
	if err := commerce.AddToCart("u1", "p3", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if _, err := commerce.CreateOrder("u1", models.BillingInfo{}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Mixed order touching both teachers.
	if err := commerce.AddToCart("u2", "p1", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := commerce.AddToCart("u2", "p3", 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if _, err := commerce.CreateOrder("u2", models.BillingInfo{}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if sales := commerce.TeacherSales("t1"); len(sales) != 1 {
		t.Fatalf("expected 1 sale for t1, got %d", len(sales))
	}
	if sales := commerce.TeacherSales("t2"); len(sales) != 2 {
		t.Fatalf("expected 2 sales for t2, got %d", len(sales))
	}
	if sales := commerce.TeacherSales("t3"); len(sales) != 0 {
		t.Fatalf("expected no sales for t3, got %d", len(sales))
	}
}

func TestProductOwnershipScoping(t *testing.T) {
	commerce := NewCommerceStore(testCatalog())

	name := "Renamed"
	if _, err := commerce.UpdateProduct("t2", "p1", models.UpdateProductRequest{Name: &name}); !errors.Is(err, ErrNotProductOwner) {
		t.Fatalf("expected ErrNotProductOwner, got %v", err)
	}
	if err := commerce.DeleteProduct("t2", "p1"); !errors.Is(err, ErrNotProductOwner) {
		t.Fatalf("expected ErrNotProductOwner, got %v", err)
	}

	if err := commerce.DeleteProduct("t1", "p1"); err != nil {
		t.Fatalf("delete own product: %v", err)
	}
	if _, err := commerce.ProductByID("p1"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product gone, got %v", err)
	}
}
