package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"budokan-backend-go/internal/models"
)

var (
	// ErrProductNotFound is returned when a product id is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotProductOwner is returned when a teacher edits someone else's
	// product.
	ErrNotProductOwner = errors.New("product belongs to another teacher")
	// ErrEmptyCart is returned when checking out with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// CommerceStore owns the product catalog, per-user shopping carts and the
// order history. Orders embed frozen copies of cart items, so catalog edits
// never alter purchase history.
type CommerceStore struct {
	mu       sync.RWMutex
	products []models.Product
	carts    map[string][]models.CartItem
	orders   []models.Order
	now      func() time.Time
}

// NewCommerceStore creates the store with a seeded catalog.
func NewCommerceStore(seed []models.Product) *CommerceStore {
	products := append([]models.Product(nil), seed...)
	return &CommerceStore{
		products: products,
		carts:    make(map[string][]models.CartItem),
		now:      time.Now,
	}
}

// Products returns a copy of the catalog.
func (s *CommerceStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// ProductByID looks up a catalog entry.
func (s *CommerceStore) ProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AddProduct adds a catalog entry owned by the given teacher.
func (s *CommerceStore) AddProduct(teacherID string, req models.CreateProductRequest) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	product := models.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		Type:      req.Type,
		TeacherID: teacherID,
		InStock:   req.InStock,
		Digital:   req.Digital,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.products = append(s.products, product)
	return product
}

// UpdateProduct edits a product owned by the given teacher.
func (s *CommerceStore) UpdateProduct(teacherID, productID string, req models.UpdateProductRequest) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		if s.products[i].TeacherID != teacherID {
			return models.Product{}, ErrNotProductOwner
		}
		if req.Name != nil {
			s.products[i].Name = *req.Name
		}
		if req.Price != nil {
			s.products[i].Price = *req.Price
		}
		if req.Type != nil {
			s.products[i].Type = *req.Type
		}
		if req.InStock != nil {
			s.products[i].InStock = *req.InStock
		}
		if req.Digital != nil {
			s.products[i].Digital = *req.Digital
		}
		s.products[i].UpdatedAt = s.now().UTC()
		return s.products[i], nil
	}
	return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// DeleteProduct removes a product owned by the given teacher. Existing cart
// lines and orders keep their snapshots.
func (s *CommerceStore) DeleteProduct(teacherID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		if s.products[i].TeacherID != teacherID {
			return ErrNotProductOwner
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// AddToCart copies the product into the user's cart. Adding a product
// already in the cart increases its quantity. A non-positive quantity
// defaults to one.
func (s *CommerceStore) AddToCart(userID, productID string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var product *models.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].Product.ID == productID {
			cart[i].Quantity += quantity
			s.carts[userID] = cart
			return nil
		}
	}
	s.carts[userID] = append(cart, models.CartItem{Product: *product, Quantity: quantity})
	return nil
}

// RemoveFromCart drops a cart line. Removing an absent line is a no-op.
func (s *CommerceStore) RemoveFromCart(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(userID, productID)
}

// UpdateQuantity sets a cart line's quantity. Zero or negative removes the
// line.
func (s *CommerceStore) UpdateQuantity(userID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLineLocked(userID, productID)
		return
	}
	cart := s.carts[userID]
	for i := range cart {
		if cart[i].Product.ID == productID {
			cart[i].Quantity = quantity
			s.carts[userID] = cart
			return
		}
	}
}

// Cart returns a copy of the user's cart.
func (s *CommerceStore) Cart(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.carts[userID])
}

// CartTotal sums price times quantity across the user's cart.
func (s *CommerceStore) CartTotal(userID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return itemsTotal(s.carts[userID])
}

// CreateOrder snapshots the user's cart into a new immutable order and
// clears the cart in the same critical section, so no caller can observe an
// order without an emptied cart or the reverse.
func (s *CommerceStore) CreateOrder(userID string, billing models.BillingInfo) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     cloneItems(cart),
		Total:     itemsTotal(cart),
		Billing:   billing,
		CreatedAt: s.now().UTC(),
	}
	s.orders = append(s.orders, order)
	delete(s.carts, userID)
	return cloneOrder(order), nil
}

// UserOrders returns the user's orders, newest first.
func (s *CommerceStore) UserOrders(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UserPurchasedProducts returns the deduplicated union of products across
// the user's orders. When the same product appears in multiple orders, the
// snapshot from the first-seen order wins.
func (s *CommerceStore) UserPurchasedProducts(userID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []models.Product
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		for _, item := range o.Items {
			if _, ok := seen[item.Product.ID]; ok {
				continue
			}
			seen[item.Product.ID] = struct{}{}
			out = append(out, item.Product)
		}
	}
	return out
}

// TeacherSales returns orders containing at least one of the teacher's
// products, newest first.
func (s *CommerceStore) TeacherSales(teacherID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		for _, item := range o.Items {
			if item.Product.TeacherID == teacherID {
				out = append(out, cloneOrder(o))
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *CommerceStore) removeLineLocked(userID, productID string) {
	cart := s.carts[userID]
	for i := range cart {
		if cart[i].Product.ID == productID {
			s.carts[userID] = append(cart[:i], cart[i+1:]...)
			return
		}
	}
}

func cloneItems(items []models.CartItem) []models.CartItem {
	if items == nil {
		return nil
	}
	return append([]models.CartItem(nil), items...)
}

func cloneOrder(o models.Order) models.Order {
	out := o
	out.Items = cloneItems(o.Items)
	return out
}

func itemsTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
