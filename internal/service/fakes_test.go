package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"catalog-be/internal/apperror"
	"catalog-be/internal/entity"
	"catalog-be/internal/metrics"
	"catalog-be/internal/pkg/logger"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/repository/contract"
	"catalog-be/internal/repository/specification"
	"catalog-be/internal/repository/unitofwork"
	"catalog-be/pkg/events"
)

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// store is a tiny in-memory database shared by the fake repositories. The
// fakes understand the specifications the services use.
type store struct {
	mu         sync.Mutex
	nextId     int64
	products   map[int64]*entity.Product
	categories map[int64]*entity.Category
	users      map[int64]*entity.User

	failReads  bool
	failWrites bool
	// staleWrites makes every optimistic update lose the race
	staleWrites bool

	commits   int
	rollbacks int
}

func newStore() *store {
	return &store{
		products:   make(map[int64]*entity.Product),
		categories: make(map[int64]*entity.Category),
		users:      make(map[int64]*entity.User),
	}
}

func (s *store) id() *int64 {
	s.nextId++
	id := s.nextId
	return &id
}

type fakeFactory struct{ db *store }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{db: f.db}
}

type fakeUnitOfWork struct {
	db   *store
	open bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.open = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.open = false
	u.db.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if u.open {
		u.db.rollbacks++
		u.open = false
	}
	return nil
}

func (u *fakeUnitOfWork) ProductRepository() contract.ProductRepository {
	return &fakeProductRepo{db: u.db}
}

func (u *fakeUnitOfWork) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepo{db: u.db}
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{db: u.db}
}

type matcher struct {
	id        *int64
	name      string
	nameFold  string
	username  string
	email     string
	active    *bool
	enabled   *bool
	category  *int64
	onlyOn    bool
	none      bool
	limit     int
	offset    int
	preloaded bool
}

func match(specs []specification.Specification) matcher {
	var m matcher
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if s.ID == nil || *s.ID <= 0 {
				m.none = true
			} else {
				m.id = s.ID
			}
		case specification.ByName:
			m.none = m.none || s.Name == ""
			m.name = s.Name
		case specification.ByNameIgnoreCase:
			m.none = m.none || s.Name == ""
			m.nameFold = s.Name
		case specification.ByUsername:
			m.none = m.none || s.Username == ""
			m.username = s.Username
		case specification.ByEmail:
			m.none = m.none || s.Email == ""
			m.email = s.Email
		case specification.ByActive:
			m.active = &s.Active
		case specification.ByEnabled:
			m.enabled = &s.Enabled
		case specification.ByCategoryID:
			m.none = m.none || s.CategoryID <= 0
			m.category = &s.CategoryID
		case specification.EnabledUsers:
			m.onlyOn = true
		case specification.Pagination:
			m.limit, m.offset = s.Limit, s.Offset
		case specification.WithProducts:
			m.preloaded = true
		}
	}
	return m
}

func (m matcher) accepts(id int64, name string) bool {
	if m.none {
		return false
	}
	if m.id != nil && *m.id != id {
		return false
	}
	if m.name != "" && m.name != name {
		return false
	}
	if m.nameFold != "" && !strings.EqualFold(m.nameFold, name) {
		return false
	}
	return true
}

func page[T any](items []*T, m matcher) []*T {
	if m.limit <= 0 {
		return items
	}
	if m.offset >= len(items) {
		return []*T{}
	}
	end := m.offset + m.limit
	if end > len(items) {
		end = len(items)
	}
	return items[m.offset:end]
}

func sortedKeys[T any](rows map[int64]*T) []int64 {
	keys := make([]int64, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

type fakeProductRepo struct{ db *store }

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	p.Id = r.db.id()
	p.CreatedAt = time.Now()
	p.Version = 0
	r.db.products[*p.Id] = copyProduct(p)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	current, ok := r.db.products[*p.Id]
	if !ok {
		return apperror.NewNotFoundError("product", *p.Id)
	}
	if r.db.staleWrites || current.Version != p.Version {
		return &apperror.ConcurrentModificationError{Resource: "product", Id: *p.Id, Version: p.Version}
	}
	p.Version++
	now := time.Now()
	p.UpdatedAt = &now
	r.db.products[*p.Id] = copyProduct(p)
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	delete(r.db.products, id)
	return nil
}

func (r *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failReads {
		return nil, errStoreDown
	}
	m := match(specs)
	out := make([]*entity.Product, 0)
	for _, id := range sortedKeys(r.db.products) {
		p := r.db.products[id]
		if !m.accepts(id, p.Name) || (m.active != nil && *m.active != p.IsActive) {
			continue
		}
		if m.category != nil && (p.CategoryId == nil || *p.CategoryId != *m.category) {
			continue
		}
		out = append(out, copyProduct(p))
	}
	return page(out, m), nil
}

func (r *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeCategoryRepo struct{ db *store }

func (r *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	for _, p := range c.Products {
		if p.Id != nil {
			return fmt.Errorf("duplicate key value violates unique constraint \"t_products_pkey\": id=%d", *p.Id)
		}
	}
	c.Id = r.db.id()
	c.CreatedAt = time.Now()
	for _, p := range c.Products {
		p.Id = r.db.id()
		p.CategoryId = c.Id
		r.db.products[*p.Id] = copyProduct(p)
	}
	stored := *c
	stored.Products = nil
	r.db.categories[*c.Id] = &stored
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	current, ok := r.db.categories[*c.Id]
	if !ok {
		return apperror.NewNotFoundError("category", *c.Id)
	}
	if r.db.staleWrites || current.Version != c.Version {
		return &apperror.ConcurrentModificationError{Resource: "category", Id: *c.Id, Version: c.Version}
	}
	c.Version++
	stored := *c
	stored.Products = nil
	r.db.categories[*c.Id] = &stored
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	for _, p := range r.db.products {
		if p.CategoryId != nil && *p.CategoryId == id {
			p.CategoryId = nil
		}
	}
	delete(r.db.categories, id)
	return nil
}

func (r *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failReads {
		return nil, errStoreDown
	}
	m := match(specs)
	out := make([]*entity.Category, 0)
	for _, id := range sortedKeys(r.db.categories) {
		c := r.db.categories[id]
		if !m.accepts(id, c.Name) || (m.enabled != nil && *m.enabled != c.Enabled) {
			continue
		}
		found := *c
		found.Products = make([]*entity.Product, 0)
		if m.preloaded {
			for _, pid := range sortedKeys(r.db.products) {
				p := r.db.products[pid]
				if p.CategoryId != nil && *p.CategoryId == id {
					found.Products = append(found.Products, copyProduct(p))
				}
			}
		}
		out = append(out, &found)
	}
	return page(out, m), nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeUserRepo struct{ db *store }

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	u.Id = r.db.id()
	u.CreatedAt = time.Now()
	stored := *u
	r.db.users[*u.Id] = &stored
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stored := *u
	r.db.users[*u.Id] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites {
		return errStoreDown
	}
	delete(r.db.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failReads {
		return nil, errStoreDown
	}
	m := match(specs)
	out := make([]*entity.User, 0)
	for _, id := range sortedKeys(r.db.users) {
		u := r.db.users[id]
		if !m.accepts(id, u.Username) {
			continue
		}
		if m.username != "" && m.username != u.Username {
			continue
		}
		if m.email != "" && m.email != u.Email {
			continue
		}
		if m.onlyOn && !u.Enabled {
			continue
		}
		found := *u
		out = append(out, &found)
	}
	return page(out, m), nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	fail   bool
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("bus unavailable")
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

func testObserver(module string) *Observer {
	return NewObserver(module, NewAuthorizer(DefaultPolicy), logger.NewNopLogger(), metrics.New(false))
}

func as(roles ...entity.Role) context.Context {
	return security.WithPrincipal(context.Background(), &security.Principal{UserId: 1, Username: "tester", Roles: roles})
}

var (
	asAdmin     = as(entity.RoleAdmin)
	asModerator = as(entity.RoleModerator)
	asUser      = as(entity.RoleUser)
)
