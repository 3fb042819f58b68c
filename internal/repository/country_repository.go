package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/param"
)

// 国と地域（見つからなければ ErrNotFound）
type CountryRepository interface {
	RetrieveCountry(ctx context.Context, p *param.RetrieveCountryParam) (*model.Country, error)
}
