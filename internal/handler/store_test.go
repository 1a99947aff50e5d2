package handler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// memStore is an in-memory stand-in for the PostgreSQL repositories
type memStore struct {
	mu       sync.Mutex
	admins   []model.Admin
	users    []model.User
	products map[int64]model.Product
	orders   []model.Order
	nextID   int64
	pingErr  error
	tableErr error
}

func newMemStore() *memStore {
	return &memStore{products: map[int64]model.Product{}}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memAdmins struct{ *memStore }

func (r memAdmins) Create(_ context.Context, admin *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == admin.Username {
			return repository.ErrConflict
		}
	}
	admin.ID = int(r.id())
	admin.CreatedAt = time.Now()
	r.admins = append(r.admins, *admin)
	return nil
}

func (r memAdmins) FindByUsername(_ context.Context, username string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r memAdmins) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.admins {
		if a.ID == id {
			r.admins = append(r.admins[:i], r.admins[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = int(r.id())
	r.users = append(r.users, *user)
	return nil
}

func (r memUsers) FindByUsernameAndPhone(_ context.Context, username, phone string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Username == username && u.PhoneNumber == phone }), nil
}

func (r memUsers) FindByUsernameOrPhone(_ context.Context, username, phone string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Username == username || u.PhoneNumber == phone }), nil
}

func (r memUsers) find(match func(model.User) bool) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			found := u
			return &found
		}
	}
	return nil
}

type memProducts struct{ *memStore }

func (r memProducts) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	p.CreatedAt = time.Now()
	r.products[p.ID] = *p
	return nil
}

func (r memProducts) FindByID(_ context.Context, id int64) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) FindAvailable(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := []model.Product{}
	for _, p := range r.products {
		if p.Availability {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r memProducts) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type memOrders struct{ *memStore }

func (r memOrders) CreateWithItems(_ context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.id()
	o.CreatedAt = time.Now()
	for i := range o.CartSummary {
		o.CartSummary[i].ID = r.id()
		o.CartSummary[i].OrderID = o.ID
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r memOrders) FindByContact(_ context.Context, filters model.OrderFilters) ([]model.Order, error) {
	return r.newestFirst(func(o model.Order) bool {
		if o.BuyerContact != filters.BuyerContact {
			return false
		}
		return filters.Status == nil || string(o.Status) == *filters.Status
	}), nil
}

func (r memOrders) FindAll(_ context.Context) ([]model.Order, error) {
	return r.newestFirst(func(model.Order) bool { return true }), nil
}

func (r memOrders) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			updated := r.orders[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memOrders) newestFirst(match func(model.Order) bool) []model.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := []model.Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		if match(r.orders[i]) {
			orders = append(orders, r.orders[i])
		}
	}
	return orders
}

func (s *memStore) ListTables(context.Context) ([]string, error) {
	if s.tableErr != nil {
		return nil, s.tableErr
	}
	return []string{"admins", "order_items", "orders", "products", "users"}, nil
}

func (s *memStore) Ping(context.Context) error {
	return s.pingErr
}

var errStoreDown = errors.New("connection refused")
