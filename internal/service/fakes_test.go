package service

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
	nextID int
	err    error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*model.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.admins[admin.Username]; ok {
		return repository.ErrConflict
	}
	r.nextID++
	admin.ID = r.nextID
	admin.CreatedAt = time.Now()
	stored := *admin
	r.admins[admin.Username] = &stored
	return nil
}

func (r *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	admin, ok := r.admins[username]
	if !ok {
		return nil, nil
	}
	found := *admin
	return &found, nil
}

func (r *fakeAdminRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for username, admin := range r.admins {
		if admin.ID == id {
			delete(r.admins, username)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	users []model.User
	err   error
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = len(r.users) + 1
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindByUsernameAndPhone(_ context.Context, username, phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.PhoneNumber == phone {
			found := u
			return &found, nil
		}
	}
	return nil, r.err
}

func (r *fakeUserRepo) FindByUsernameOrPhone(_ context.Context, username, phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.PhoneNumber == phone {
			found := u
			return &found, nil
		}
	}
	return nil, r.err
}

type fakeProductRepo struct {
	products map[int64]*model.Product
	created  []model.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *p)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) FindAvailable(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Availability {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	created    []model.Order
	lastFilter model.OrderFilters
	updated    map[int64]model.OrderStatus
	err        error
}

func (r *fakeOrderRepo) CreateWithItems(_ context.Context, o *model.Order) error {
	if r.err != nil {
		return r.err
	}
	o.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *o)
	return nil
}

func (r *fakeOrderRepo) FindByContact(_ context.Context, filters model.OrderFilters) ([]model.Order, error) {
	r.lastFilter = filters
	return []model.Order{}, r.err
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]model.Order, error) {
	return r.created, r.err
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if id > int64(len(r.created)) {
		return nil, repository.ErrNotFound
	}
	if r.updated == nil {
		r.updated = map[int64]model.OrderStatus{}
	}
	r.updated[id] = status
	o := r.created[id-1]
	o.Status = status
	return &o, nil
}
