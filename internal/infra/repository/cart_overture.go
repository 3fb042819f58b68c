package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type CartOvertureRepository struct {
	client overture.CartClient
}

var _ repo.CartRepository = (*CartOvertureRepository)(nil)

// DI
func NewCartOvertureRepository(client overture.CartClient) *CartOvertureRepository {
	return &CartOvertureRepository{client: client}
}

func (r *CartOvertureRepository) GetCart(ctx context.Context, p *param.GetCartParam) (*model.Cart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.GetCart(ctx, overture.GetCartRequest{
		CartKey:         cartKey(p.Scope, p.CustomerID, p.CartName, p.CultureInfo),
		CurrencyCode:    p.CurrencyCode,
		ExecuteWorkflow: p.ExecuteWorkflow,
	})
}

func (r *CartOvertureRepository) AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*model.Cart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.AddLineItem(ctx, overture.AddLineItemRequest{
		CartKey:   cartKey(p.Scope, p.CustomerID, p.CartName, p.CultureInfo),
		ProductID: p.ProductID,
		VariantID: p.VariantID,
		Quantity:  p.Quantity,
	})
}

func (r *CartOvertureRepository) UpdateLineItem(ctx context.Context, p *param.UpdateLineItemParam) (*model.Cart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.UpdateLineItem(ctx, overture.UpdateLineItemRequest{
		CartKey:     cartKey(p.Scope, p.CustomerID, p.CartName, p.CultureInfo),
		LineItemID:  p.LineItemID,
		Quantity:    p.Quantity,
		GiftWrap:    p.GiftWrap,
		GiftMessage: p.GiftMessage,
	})
}

func (r *CartOvertureRepository) RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*model.Cart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.RemoveLineItem(ctx, overture.RemoveLineItemRequest{
		CartKey:    cartKey(p.Scope, p.CustomerID, p.CartName, p.CultureInfo),
		LineItemID: p.LineItemID,
	})
}

func (r *CartOvertureRepository) AddCoupon(ctx context.Context, p *param.CouponParam) (*model.Cart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.AddCoupon(ctx, overture.AddCouponRequest{
		CartKey:    cartKey(p.Scope, p.CustomerID, p.CartName, p.CultureInfo),
		CouponCode: p.CouponCode,
	})
}

// 1件ずつ消して、失敗はまとめて返す
func (r *CartOvertureRepository) RemoveCoupons(ctx context.Context, p *param.RemoveCouponsParam) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var errs []error
	for _, code := range p.CouponCodes {
		err := r.client.RemoveCoupon(ctx, overture.RemoveCouponRequest{
			CartKey:    overture.CartKey{ScopeID: p.Scope, CustomerID: p.CustomerID, CartName: p.CartName},
			CouponCode: code,
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return overture.Combine(errs...)
}

func (r *CartOvertureRepository) MergeCart(ctx context.Context, p *param.MergeCartParam) (*model.Cart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.MergeCart(ctx, overture.MergeCartRequest{
		ScopeID:         p.Scope,
		CartName:        p.CartName,
		GuestCustomerID: p.GuestCustomerID,
		CustomerID:      p.CustomerID,
	})
}
