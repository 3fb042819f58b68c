package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type OrderOvertureRepository struct {
	client overture.OrderClient
}

var _ repo.OrderRepository = (*OrderOvertureRepository)(nil)

// DI
func NewOrderOvertureRepository(client overture.OrderClient) *OrderOvertureRepository {
	return &OrderOvertureRepository{client: client}
}

func (r *OrderOvertureRepository) CompleteCheckout(ctx context.Context, p *param.CompleteCheckoutParam) (*model.Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.CompleteCheckout(ctx, overture.CompleteCheckoutRequest{
		CartKey:        cartKey(p.Scope, p.CustomerID, p.CartName, p.CultureInfo),
		IdempotencyKey: p.IdempotencyKey,
	})
}

func (r *OrderOvertureRepository) GetCustomerOrders(ctx context.Context, p *param.GetCustomerOrdersParam) (*model.OrderQueryResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.GetOrders(ctx, overture.GetOrdersRequest{
		ScopeID:    p.Scope,
		CustomerID: p.CustomerID,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
}

func (r *OrderOvertureRepository) GetOrder(ctx context.Context, p *param.GetOrderParam) (*model.Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o, err := r.client.GetOrder(ctx, overture.GetOrderRequest{
		ScopeID:     p.Scope,
		CustomerID:  p.CustomerID,
		OrderNumber: p.OrderNumber,
	})
	return orderNotFound(o, err)
}

func (r *OrderOvertureRepository) UpdateOrderCustomer(ctx context.Context, p *param.UpdateOrderCustomerParam) (*model.Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o, err := r.client.UpdateOrderCustomer(ctx, overture.UpdateOrderCustomerRequest{
		ScopeID:     p.Scope,
		OrderNumber: p.OrderNumber,
		CustomerID:  p.CustomerID,
	})
	return orderNotFound(o, err)
}

func orderNotFound(o *model.Order, err error) (*model.Order, error) {
	if overture.HasCode(err, overture.CodeOrderNotFound) {
		return nil, repo.ErrNotFound
	}
	return o, err
}
