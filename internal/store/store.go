// Package store owns the whole application state: the product catalog,
// the shopper's cart and the order book. Every mutation goes through the
// Store; nothing outside this package touches the tables directly.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Snapshot is the persisted shape of the state, one key per table.
type Snapshot struct {
	Products []Product  `json:"products"`
	Cart     []CartLine `json:"cart"`
	Orders   []Order    `json:"orders"`
}

// Repository persists snapshots. Load returns (nil, nil) when no
// persisted state exists yet.
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Close() error
}

// ProductUpdate is a partial product edit. Nil fields are left untouched.
type ProductUpdate struct {
	Name          *string   `json:"name"`
	Category      *Category `json:"category"`
	Price         *int64    `json:"price"`
	OriginalPrice *int64    `json:"originalPrice"`
	Image         *string   `json:"image"`
	Description   *string   `json:"description"`
	Specs         *[]string `json:"specs"`
	Stock         *int      `json:"stock"`
	Brand         *string   `json:"brand"`
}

// Store is the single state owner. It is safe for concurrent use; each
// operation runs to completion under the lock before the next begins.
type Store struct {
	mu   sync.Mutex
	log  logrus.FieldLogger
	repo Repository

	products []Product
	cart     []CartLine
	orders   []Order

	nextProductID int64
	nextOrderID   int64
}

// New loads persisted state from repo, or seeds the built-in catalog when
// none exists. repo may be nil (volatile store, used by tests).
func New(repo Repository, log logrus.FieldLogger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{log: log, repo: repo}

	var snap *Snapshot
	if repo != nil {
		var err error
		snap, err = repo.Load(context.Background())
		if err != nil {
			return nil, err
		}
	}
	if snap == nil {
		s.products = SeedProducts()
		log.WithField("products", len(s.products)).Info("no persisted state, seeded catalog")
	} else {
		s.products = snap.Products
		s.cart = snap.Cart
		s.orders = snap.Orders
		log.WithFields(logrus.Fields{
			"products": len(s.products),
			"cart":     len(s.cart),
			"orders":   len(s.orders),
		}).Info("restored persisted state")
	}

	// Ids are explicit counters seeded past everything already present,
	// so rapid successive creates can never collide.
	s.nextProductID = maxProductID(s.products) + 1
	s.nextOrderID = maxOrderID(s.orders) + 1
	return s, nil
}

func maxProductID(ps []Product) int64 {
	var max int64
	for _, p := range ps {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

func maxOrderID(os []Order) int64 {
	var max int64
	for _, o := range os {
		if o.ID > max {
			max = o.ID
		}
	}
	return max
}

// persist writes the current state through the repository. Best-effort:
// a failed save is logged and otherwise ignored. Callers hold s.mu.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	snap := s.snapshotLocked()
	if err := s.repo.Save(context.Background(), snap); err != nil {
		s.log.WithError(err).Error("persist snapshot failed")
	}
}

func (s *Store) snapshotLocked() *Snapshot {
	return &Snapshot{
		Products: cloneProducts(s.products),
		Cart:     cloneLines(s.cart),
		Orders:   cloneOrders(s.orders),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

//
// ----- cart -----
//

// AddToCart appends a snapshot of p with the given quantity, or bumps the
// quantity of the existing line for the same product id. There is no
// stock check; quantity may exceed available stock.
func (s *Store) AddToCart(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.cart = append(s.cart, CartLine{Product: cloneProduct(p), Quantity: quantity})
	s.persist()
}

// RemoveFromCart deletes the line for productID. No-op when absent.
func (s *Store) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID)
	s.persist()
}

func (s *Store) removeLineLocked(productID int64) {
	out := s.cart[:0]
	for _, l := range s.cart {
		if l.ID != productID {
			out = append(out, l)
		}
	}
	s.cart = out
}

// UpdateCartQuantity overwrites the quantity of the matching line.
// quantity <= 0 removes the line, same as RemoveFromCart. No-op when the
// product is not in the cart.
func (s *Store) UpdateCartQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLineLocked(productID)
		s.persist()
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// ClearCart drops every line.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persist()
}

// Cart returns a copy of the current lines.
func (s *Store) Cart() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.cart)
}

// CartTotal is the sum of price*quantity over current lines, recomputed
// on every call.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() int64 {
	var total int64
	for _, l := range s.cart {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

// CartCount is the number of units in the cart (sum of quantities).
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, l := range s.cart {
		n += l.Quantity
	}
	return n
}

//
// ----- orders -----
//

// CreateOrder turns the current cart into a new pending Order and clears
// the cart, atomically: the total is computed from the pre-clear cart.
// Non-COD payments are marked paid immediately; there is no gateway.
func (s *Store) CreateOrder(customer Customer, method PaymentMethod) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	pay := PaymentPaid
	if method == PaymentCOD {
		pay = PaymentPending
	}
	o := Order{
		ID:            s.nextOrderID,
		Items:         cloneLines(s.cart),
		Total:         s.cartTotalLocked(),
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
		Customer:      customer,
		PaymentMethod: method,
		PaymentStatus: pay,
	}
	s.nextOrderID++
	s.orders = append(s.orders, o)
	s.cart = nil
	s.persist()
	return cloneOrder(o)
}

// Orders returns a copy of the order book, newest last.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

// FindOrder looks an order up by id.
func (s *Store) FindOrder(id int64) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return Order{}, false
}

// UpdateOrderStatus rewrites only the status field of the matching order.
// Returns false (without touching anything) when the id is unknown.
func (s *Store) UpdateOrderStatus(id int64, status OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.persist()
			return true
		}
	}
	return false
}

//
// ----- catalog -----
//

// Products returns a copy of the catalog, optionally filtered by category
// and a case-insensitive name/brand search.
func (s *Store) Products(category Category, q string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !containsFold(p.Name, q) && !containsFold(p.Brand, q) {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out
}

// FindProduct looks a product up by id.
func (s *Store) FindProduct(id int64) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}
	return Product{}, false
}

// AddProduct assigns a fresh id and appends p to the catalog.
func (s *Store) AddProduct(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, cloneProduct(p))
	s.persist()
	return p
}

// UpdateProduct merges the non-nil fields of u into the matching product.
// Returns false when the id is unknown; existing orders and cart lines
// that embarked a copy of the product are never touched.
func (s *Store) UpdateProduct(id int64, u ProductUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.Category != nil {
			p.Category = *u.Category
		}
		if u.Price != nil {
			p.Price = *u.Price
		}
		if u.OriginalPrice != nil {
			p.OriginalPrice = *u.OriginalPrice
		}
		if u.Image != nil {
			p.Image = *u.Image
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Specs != nil {
			p.Specs = append([]string(nil), *u.Specs...)
		}
		if u.Stock != nil {
			p.Stock = *u.Stock
		}
		if u.Brand != nil {
			p.Brand = *u.Brand
		}
		s.persist()
		return true
	}
	return false
}

// DeleteProduct removes the matching product. No-op when absent.
func (s *Store) DeleteProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.products = out
	s.persist()
}

//
// ----- derived admin stats -----
//

// Stats is the dashboard summary block.
type Stats struct {
	Products      int       `json:"products"`
	Orders        int       `json:"orders"`
	PendingOrders int       `json:"pendingOrders"`
	Revenue       int64     `json:"revenue"`
	LowStock      []Product `json:"lowStock"`
}

const lowStockThreshold = 20

// Stats recomputes the dashboard numbers from current state.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Products: len(s.products), Orders: len(s.orders)}
	for _, o := range s.orders {
		st.Revenue += o.Total
		if o.Status == StatusPending {
			st.PendingOrders++
		}
	}
	for _, p := range s.products {
		if p.Stock < lowStockThreshold {
			st.LowStock = append(st.LowStock, cloneProduct(p))
		}
	}
	return st
}
