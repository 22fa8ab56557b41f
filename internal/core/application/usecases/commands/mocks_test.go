package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, consumerID kernel.UUID) (*user.Cart, error) {
	args := m.Called(ctx, consumerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Cart), args.Error(1)
}

func (m *MockCartRepository) AddQuantity(ctx context.Context, consumerID, itemID kernel.UUID, quantity int) (int, error) {
	args := m.Called(ctx, consumerID, itemID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockCartRepository) RemoveItem(ctx context.Context, consumerID, itemID kernel.UUID) error {
	args := m.Called(ctx, consumerID, itemID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, consumerID kernel.UUID) error {
	args := m.Called(ctx, consumerID)
	return args.Error(0)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, it *shop.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, it *shop.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Item), args.Error(1)
}

func (m *MockItemRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*shop.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*shop.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *user.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, token kernel.UUID) (*user.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token kernel.UUID) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// mockTx embeds the transaction lifecycle shared by every mock unit of work.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCartUoW struct{ mockTx }

func (m *MockCartUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockCartUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	return m.Called().Get(0).(commands.CartUoW)
}

type MockCheckoutUoW struct{ mockTx }

func (m *MockCheckoutUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockCheckoutUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockOrderUoW) ShopRepository() ports.ShopRepository {
	return m.Called().Get(0).(ports.ShopRepository)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCatalogUoW struct{ mockTx }

func (m *MockCatalogUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockCatalogUoW) ShopRepository() ports.ShopRepository {
	return m.Called().Get(0).(ports.ShopRepository)
}

func (m *MockCatalogUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockIdentityUoW struct{ mockTx }

func (m *MockIdentityUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockIdentityUoW) SessionRepository() ports.SessionRepository {
	return m.Called().Get(0).(ports.SessionRepository)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	return m.Called().Get(0).(commands.IdentityUoW)
}

// Shared fixtures.

func newConsumer(id kernel.UUID) *user.User {
	u, err := user.NewUser(id, "alice", "Alice P", "alice@example.com", "$2a$10$hash", user.Consumer, "")
	if err != nil {
		panic(err)
	}
	return u
}

func newSeller(id kernel.UUID) *user.User {
	u, err := user.NewUser(id, "bob", "Bob S", "bob@example.com", "$2a$10$hash", user.Seller, "riverside")
	if err != nil {
		panic(err)
	}
	return u
}

func newDeliveryPerson(id kernel.UUID) *user.User {
	u, err := user.NewUser(id, "carol", "Carol D", "carol@example.com", "$2a$10$hash", user.DeliveryPerson, "riverside")
	if err != nil {
		panic(err)
	}
	return u
}

func newShopOwnedBy(ownerID kernel.UUID) *shop.Shop {
	s, err := shop.NewShop(kernel.NewUUID(), ownerID, "Corner Grocers", "grocery", "riverside", "")
	if err != nil {
		panic(err)
	}
	return s
}

func newItemInShop(shopID kernel.UUID, name string, amount float64) *shop.Item {
	price, err := kernel.NewPrice(kernel.PerPiece, amount)
	if err != nil {
		panic(err)
	}
	it, err := shop.NewItem(kernel.NewUUID(), shopID, name, "grocery", "", price)
	if err != nil {
		panic(err)
	}
	return it
}

func newPlacedOrderFor(consumerID, shopID kernel.UUID) *order.Order {
	return newPlacedOrderPaidVia(consumerID, shopID, order.PaymentMethodCashOnDelivery)
}

func newPlacedOrderPaidVia(consumerID, shopID kernel.UUID, method string) *order.Order {
	price, err := kernel.NewPrice(kernel.PerPiece, 25)
	if err != nil {
		panic(err)
	}
	line, err := order.NewLineItem(kernel.NewUUID(), "Brown Bread", price, 2)
	if err != nil {
		panic(err)
	}
	payment, err := order.NewPayment(method)
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), order.NewOrderCode(), consumerID, shopID,
		[]order.LineItem{line}, "12 Hill Road", payment)
	if err != nil {
		panic(err)
	}
	return o
}
