package repository

import (
	"context"

	"composer/internal/cache"
	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type CustomerOvertureRepository struct {
	client overture.CustomerClient
	cache  *cache.Cache
}

var _ repo.CustomerRepository = (*CustomerOvertureRepository)(nil)

// DI
func NewCustomerOvertureRepository(client overture.CustomerClient, c *cache.Cache) *CustomerOvertureRepository {
	return &CustomerOvertureRepository{client: client, cache: c}
}

// (scope, id) でキャッシュ
func (r *CustomerOvertureRepository) GetCustomerByID(ctx context.Context, p *param.GetCustomerByIDParam) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// 見つからない結果はキャッシュしない
	key := cache.NewKey(cache.CategoryCustomer, p.Scope).AppendKeyParts(p.CustomerID)
	return notFoundAsNil(cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) (*model.Customer, error) {
		return r.client.GetCustomerByID(ctx, p.Scope, p.CustomerID)
	}))
}

func (r *CustomerOvertureRepository) GetCustomerByUsername(ctx context.Context, p *param.GetCustomerByUsernameParam) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return notFoundAsNil(r.client.GetCustomerByUsername(ctx, p.Scope, p.Username))
}

func notFoundAsNil(c *model.Customer, err error) (*model.Customer, error) {
	if overture.HasCode(err, overture.CodeCustomerNotFound) {
		return nil, nil
	}
	return c, err
}

type CustomerLookupOvertureRepository struct {
	client overture.LookupClient
	cache  *cache.Cache
}

var _ repo.CustomerLookupRepository = (*CustomerLookupOvertureRepository)(nil)

// DI
func NewCustomerLookupOvertureRepository(client overture.LookupClient, c *cache.Cache) *CustomerLookupOvertureRepository {
	return &CustomerLookupOvertureRepository{client: client, cache: c}
}

func (r *CustomerLookupOvertureRepository) GetLookups(ctx context.Context) ([]model.Lookup, error) {
	key := cache.NewKey(cache.CategoryLookup, "").AppendKeyParts("customerlookups")
	return cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) ([]model.Lookup, error) {
		return r.client.GetLookups(ctx)
	})
}

func (r *CustomerLookupOvertureRepository) GetLookup(ctx context.Context, p *param.GetLookupParam) (*model.Lookup, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	key := cache.NewKey(cache.CategoryLookup, "").AppendKeyParts(p.LookupName)
	l, err := cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) (*model.Lookup, error) {
		return r.client.GetLookup(ctx, p.LookupName)
	})
	if overture.HasCode(err, overture.CodeLookupNotFound) {
		return nil, repo.ErrNotFound
	}
	return l, err
}
