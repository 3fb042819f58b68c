package overture

import (
	"context"

	"github.com/google/uuid"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

func (b *Backend) GetCustomerByID(ctx context.Context, scopeID string, customerID uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := b.db.WithContext(ctx).Where("id = ? AND scope_id = ?", customerID, scopeID).First(&c).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeCustomerNotFound, "customer "+customerID.String()+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (b *Backend) GetCustomerByUsername(ctx context.Context, scopeID string, username string) (*model.Customer, error) {
	var c model.Customer
	err := b.db.WithContext(ctx).Where("scope_id = ? AND lower(username) = lower(?)", scopeID, username).First(&c).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeCustomerNotFound, "customer "+username+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
