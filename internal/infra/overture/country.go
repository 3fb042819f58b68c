package overture

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

// 国と地域（地域はコード順）
func (b *Backend) GetCountry(ctx context.Context, req overture.GetCountryRequest) (*model.Country, error) {
	var c model.Country
	err := b.db.WithContext(ctx).
		Preload("Regions", func(db *gorm.DB) *gorm.DB { return db.Order("iso_code asc") }).
		Where("upper(iso_code) = ?", strings.ToUpper(strings.TrimSpace(req.IsoCode))).
		First(&c).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeCountryNotFound, "country "+req.IsoCode+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
