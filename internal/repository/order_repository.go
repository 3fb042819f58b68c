package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/param"
)

// チェックアウトと注文履歴
// 見つからない注文は ErrNotFound、チェックアウトの業務エラーは *overture.Error
type OrderRepository interface {
	CompleteCheckout(ctx context.Context, p *param.CompleteCheckoutParam) (*model.Order, error)
	GetCustomerOrders(ctx context.Context, p *param.GetCustomerOrdersParam) (*model.OrderQueryResult, error)
	GetOrder(ctx context.Context, p *param.GetOrderParam) (*model.Order, error)
	UpdateOrderCustomer(ctx context.Context, p *param.UpdateOrderCustomerParam) (*model.Order, error)
}
