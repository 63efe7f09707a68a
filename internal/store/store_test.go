package store

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newVolatileStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(nil, quietLogger())
	require.NoError(t, err)
	return s
}

func testProduct(id int64, price int64) Product {
	return Product{
		ID:       id,
		Name:     "Test Phone",
		Category: CategoryPhone,
		Price:    price,
		Specs:    []string{"RAM 8GB"},
		Stock:    10,
		Brand:    "Test",
	}
}

func testCustomer() Customer {
	return Customer{FullName: "A", Phone: "0900", Address: "X", City: "HCM"}
}

func TestNew_SeedsCatalogWhenNoState(t *testing.T) {
	s := newVolatileStore(t)

	products := s.Products("", "")
	require.Len(t, products, 8)
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Orders())
}

func TestAddToCart_MergesSameProduct(t *testing.T) {
	s := newVolatileStore(t)
	p := testProduct(1, 1000000)

	s.AddToCart(p, 2)
	s.AddToCart(p, 3)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].ID)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestAddToCart_SnapshotsProduct(t *testing.T) {
	s := newVolatileStore(t)
	p, found := s.FindProduct(1)
	require.True(t, found)

	s.AddToCart(p, 1)
	newPrice := p.Price * 2
	require.True(t, s.UpdateProduct(1, ProductUpdate{Price: &newPrice}))

	// catalog edit must not reach the line already in the cart
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, p.Price, cart[0].Price)
	assert.Equal(t, p.Price, s.CartTotal())
}

func TestUpdateCartQuantity_ZeroRemovesLine(t *testing.T) {
	s1 := newVolatileStore(t)
	s2 := newVolatileStore(t)
	p := testProduct(1, 500000)

	s1.AddToCart(p, 2)
	s2.AddToCart(p, 2)

	s1.UpdateCartQuantity(1, 0)
	s2.RemoveFromCart(1)

	assert.Equal(t, s2.Cart(), s1.Cart())
	assert.Empty(t, s1.Cart())
}

func TestUpdateCartQuantity_UnknownIDNoop(t *testing.T) {
	s := newVolatileStore(t)
	s.AddToCart(testProduct(1, 100), 1)

	s.UpdateCartQuantity(99, 5)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCartTotal_RecomputedAfterEveryMutation(t *testing.T) {
	s := newVolatileStore(t)
	s.AddToCart(testProduct(1, 1000000), 2)
	assert.Equal(t, int64(2000000), s.CartTotal())

	s.AddToCart(testProduct(2, 300000), 1)
	assert.Equal(t, int64(2300000), s.CartTotal())

	s.UpdateCartQuantity(1, 1)
	assert.Equal(t, int64(1300000), s.CartTotal())

	s.RemoveFromCart(2)
	assert.Equal(t, int64(1000000), s.CartTotal())

	s.ClearCart()
	assert.Zero(t, s.CartTotal())
}

func TestCreateOrder_FreezesTotalAndClearsCart(t *testing.T) {
	s := newVolatileStore(t)
	s.AddToCart(testProduct(1, 1000000), 2)
	want := s.CartTotal()

	o := s.CreateOrder(testCustomer(), PaymentCOD)

	assert.Equal(t, want, o.Total)
	assert.Equal(t, int64(2000000), o.Total)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Empty(t, s.Cart())
	assert.Zero(t, s.CartTotal())
}

func TestCreateOrder_NonCODIsPaidImmediately(t *testing.T) {
	s := newVolatileStore(t)

	for _, m := range []PaymentMethod{PaymentBank, PaymentCard} {
		s.AddToCart(testProduct(1, 100), 1)
		o := s.CreateOrder(testCustomer(), m)
		assert.Equal(t, PaymentPaid, o.PaymentStatus, "method %s", m)
	}
}

func TestCreateOrder_IDsAreDistinctUnderRapidCalls(t *testing.T) {
	s := newVolatileStore(t)

	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		s.AddToCart(testProduct(1, 100), 1)
		o := s.CreateOrder(testCustomer(), PaymentCOD)
		assert.False(t, seen[o.ID], "duplicate order id %d", o.ID)
		seen[o.ID] = true
	}
}

func TestUpdateOrderStatus_ChangesOnlyStatus(t *testing.T) {
	s := newVolatileStore(t)
	s.AddToCart(testProduct(1, 1000000), 2)
	created := s.CreateOrder(testCustomer(), PaymentBank)

	require.True(t, s.UpdateOrderStatus(created.ID, StatusCompleted))

	got, found := s.FindOrder(created.ID)
	require.True(t, found)
	assert.Equal(t, StatusCompleted, got.Status)

	// everything but status is byte-identical
	got.Status = created.Status
	assert.Equal(t, created, got)
}

func TestUpdateOrderStatus_UnknownIDNoop(t *testing.T) {
	s := newVolatileStore(t)
	s.AddToCart(testProduct(1, 100), 1)
	s.CreateOrder(testCustomer(), PaymentCOD)
	before := s.Orders()

	assert.False(t, s.UpdateOrderStatus(424242, StatusCancelled))
	assert.Equal(t, before, s.Orders())
}

func TestAddProduct_MonotonicIDs(t *testing.T) {
	s := newVolatileStore(t)

	a := s.AddProduct(Product{Name: "A", Category: CategoryLaptop, Price: 1})
	b := s.AddProduct(Product{Name: "B", Category: CategoryTablet, Price: 1})

	// seeded catalog tops out at 8
	assert.Equal(t, int64(9), a.ID)
	assert.Equal(t, int64(10), b.ID)
}

func TestUpdateProduct_PartialMerge(t *testing.T) {
	s := newVolatileStore(t)
	before, found := s.FindProduct(3)
	require.True(t, found)

	stock := 7
	require.True(t, s.UpdateProduct(3, ProductUpdate{Stock: &stock}))

	after, _ := s.FindProduct(3)
	assert.Equal(t, 7, after.Stock)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Price, after.Price)
	assert.Equal(t, before.Specs, after.Specs)
}

func TestUpdateProduct_UnknownID(t *testing.T) {
	s := newVolatileStore(t)
	name := "ghost"
	assert.False(t, s.UpdateProduct(9999, ProductUpdate{Name: &name}))
}

func TestDeleteProduct_UnknownIDLeavesCatalogUntouched(t *testing.T) {
	s := newVolatileStore(t)
	before := s.Products("", "")

	s.DeleteProduct(5555)

	assert.Equal(t, before, s.Products("", ""))
}

func TestDeleteProduct_DoesNotTouchExistingOrders(t *testing.T) {
	s := newVolatileStore(t)
	p, _ := s.FindProduct(2)
	s.AddToCart(p, 1)
	o := s.CreateOrder(testCustomer(), PaymentCOD)

	s.DeleteProduct(2)

	_, found := s.FindProduct(2)
	assert.False(t, found)
	got, _ := s.FindOrder(o.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(2), got.Items[0].ID)
}

func TestProducts_Filter(t *testing.T) {
	s := newVolatileStore(t)

	phones := s.Products(CategoryPhone, "")
	require.NotEmpty(t, phones)
	for _, p := range phones {
		assert.Equal(t, CategoryPhone, p.Category)
	}

	apple := s.Products("", "apple")
	require.NotEmpty(t, apple)
	for _, p := range apple {
		assert.Equal(t, "Apple", p.Brand)
	}

	assert.Empty(t, s.Products(CategoryTablet, "Dell"))
}

func TestStats(t *testing.T) {
	s := newVolatileStore(t)
	s.AddToCart(testProduct(1, 1000000), 2)
	s.CreateOrder(testCustomer(), PaymentCOD)
	s.AddToCart(testProduct(2, 500000), 1)
	o := s.CreateOrder(testCustomer(), PaymentCard)
	s.UpdateOrderStatus(o.ID, StatusCancelled)

	st := s.Stats()
	assert.Equal(t, 8, st.Products)
	assert.Equal(t, 2, st.Orders)
	assert.Equal(t, 1, st.PendingOrders)
	// revenue counts every order total, cancelled included
	assert.Equal(t, int64(2500000), st.Revenue)
}

func TestEnums(t *testing.T) {
	assert.True(t, CategoryLaptop.Valid())
	assert.False(t, Category("fridge").Valid())
	assert.True(t, StatusShipping.Valid())
	assert.False(t, OrderStatus("lost").Valid())
	assert.True(t, PaymentCard.Valid())
	assert.False(t, PaymentMethod("gold").Valid())
}
