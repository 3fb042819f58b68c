package overture

import (
	"context"

	"gorm.io/gorm"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

func orderedValues(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc, id asc")
}

func (b *Backend) GetLookups(ctx context.Context) ([]model.Lookup, error) {
	var lookups []model.Lookup
	if err := b.db.WithContext(ctx).Preload("Values", orderedValues).Order("name asc").Find(&lookups).Error; err != nil {
		return nil, err
	}
	return lookups, nil
}

func (b *Backend) GetLookup(ctx context.Context, name string) (*model.Lookup, error) {
	var l model.Lookup
	err := b.db.WithContext(ctx).Preload("Values", orderedValues).Where("name = ?", name).First(&l).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeLookupNotFound, "lookup "+name+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (b *Backend) GetScope(ctx context.Context, scopeID string) (*model.Scope, error) {
	var s model.Scope
	err := b.db.WithContext(ctx).Where("id = ?", scopeID).First(&s).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeScopeNotFound, "scope "+scopeID+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
