package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/param"
)

// カートの取得と変更
// 変更系は再計算後（Processed）のカートを返す
type CartRepository interface {
	GetCart(ctx context.Context, p *param.GetCartParam) (*model.Cart, error)
	AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*model.Cart, error)
	UpdateLineItem(ctx context.Context, p *param.UpdateLineItemParam) (*model.Cart, error)
	RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*model.Cart, error)
	AddCoupon(ctx context.Context, p *param.CouponParam) (*model.Cart, error)
	// 失敗したコードのエラーはまとめて返す
	RemoveCoupons(ctx context.Context, p *param.RemoveCouponsParam) error
	MergeCart(ctx context.Context, p *param.MergeCartParam) (*model.Cart, error)
}
