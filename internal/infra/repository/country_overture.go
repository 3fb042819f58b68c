package repository

import (
	"context"
	"strings"

	"composer/internal/cache"
	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type CountryOvertureRepository struct {
	client overture.CountryClient
	cache  *cache.Cache
}

var _ repo.CountryRepository = (*CountryOvertureRepository)(nil)

// DI
func NewCountryOvertureRepository(client overture.CountryClient, c *cache.Cache) *CountryOvertureRepository {
	return &CountryOvertureRepository{client: client, cache: c}
}

// 国単位でキャッシュ（表示名は全 culture 分を持つので culture はキーに入れない）
func (r *CountryOvertureRepository) RetrieveCountry(ctx context.Context, p *param.RetrieveCountryParam) (*model.Country, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	iso := strings.ToUpper(strings.TrimSpace(p.IsoCode))
	key := cache.NewKey(cache.CategoryCountry, "").AppendKeyParts(iso)
	c, err := cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) (*model.Country, error) {
		return r.client.GetCountry(ctx, overture.GetCountryRequest{IsoCode: iso})
	})
	if overture.HasCode(err, overture.CodeCountryNotFound) {
		return nil, repo.ErrNotFound
	}
	return c, err
}
