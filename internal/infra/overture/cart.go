package overture

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

// カート取得（無ければ作成）
func (b *Backend) GetCart(ctx context.Context, req overture.GetCartRequest) (*model.Cart, error) {
	var cart *model.Cart

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := b.getOrCreateCart(tx, req.CartKey, req.CurrencyCode)
		if err != nil {
			return err
		}
		if req.ExecuteWorkflow {
			if err := b.process(tx, c); err != nil {
				return err
			}
		}
		cart = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// 明細追加（同じ商品・バリエーションは数量加算）
func (b *Backend) AddLineItem(ctx context.Context, req overture.AddLineItemRequest) (*model.Cart, error) {
	return b.mutate(ctx, req.CartKey, func(tx *gorm.DB, cart *model.Cart) error {
		var p model.Product
		err := tx.Preload("Variants").Preload("Fees").
			Where("id = ? AND is_active = ?", req.ProductID, true).
			First(&p).Error
		if isNotFound(err) {
			return overture.NewError(overture.CodeProductNotFound, "product "+req.ProductID+" not found")
		}
		if err != nil {
			return err
		}

		var variant *model.Variant
		if req.VariantID != "" {
			variant = p.FindVariant(req.VariantID)
			if variant == nil || !variant.IsActive {
				return overture.NewError(overture.CodeProductNotFound, "variant "+req.VariantID+" not found")
			}
		}

		for _, li := range cart.LineItems {
			if li.ProductID == req.ProductID && li.VariantID == req.VariantID {
				return tx.Model(&model.LineItem{}).
					Where("id = ?", li.ID).
					Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error
			}
		}

		current, regular := p.PriceFor(req.VariantID)
		li := model.LineItem{
			ID:           b.ids.NewID(),
			CartID:       cart.ID,
			ProductID:    p.ID,
			VariantID:    req.VariantID,
			Sku:          p.Sku,
			ProductName:  p.DisplayName,
			Quantity:     req.Quantity,
			CurrentPrice: decimal.NewNullDecimal(current),
			DefaultPrice: decimal.NewNullDecimal(regular),
		}
		if variant != nil {
			li.Sku = variant.Sku
			li.KvaValues = variant.KvaValues
			li.KvaDisplayValues = variant.KvaDisplayValues
		}
		for _, f := range p.Fees {
			li.AdditionalFees = append(li.AdditionalFees, model.AdditionalFee{
				Name:            f.Name,
				Description:     f.Description,
				Amount:          f.Amount,
				CalculationRule: f.CalculationRule,
				Taxable:         f.Taxable,
			})
		}
		return tx.Create(&li).Error
	})
}

// 明細の数量・ギフト設定を更新
func (b *Backend) UpdateLineItem(ctx context.Context, req overture.UpdateLineItemRequest) (*model.Cart, error) {
	return b.mutate(ctx, req.CartKey, func(tx *gorm.DB, cart *model.Cart) error {
		res := tx.Model(&model.LineItem{}).
			Where("id = ? AND cart_id = ?", req.LineItemID, cart.ID).
			Updates(map[string]interface{}{
				"quantity":     req.Quantity,
				"gift_wrap":    req.GiftWrap,
				"gift_message": req.GiftMessage,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return overture.NewError(overture.CodeLineItemNotFound, "line item "+req.LineItemID.String()+" not found")
		}
		return nil
	})
}

func (b *Backend) RemoveLineItem(ctx context.Context, req overture.RemoveLineItemRequest) (*model.Cart, error) {
	return b.mutate(ctx, req.CartKey, func(tx *gorm.DB, cart *model.Cart) error {
		res := tx.Where("id = ? AND cart_id = ?", req.LineItemID, cart.ID).Delete(&model.LineItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return overture.NewError(overture.CodeLineItemNotFound, "line item "+req.LineItemID.String()+" not found")
		}
		return nil
	})
}

// クーポン追加（状態はワークフローで決まる）
func (b *Backend) AddCoupon(ctx context.Context, req overture.AddCouponRequest) (*model.Cart, error) {
	code := strings.TrimSpace(req.CouponCode)
	return b.mutate(ctx, req.CartKey, func(tx *gorm.DB, cart *model.Cart) error {
		for _, c := range cart.Coupons {
			if strings.EqualFold(c.CouponCode, code) {
				return nil
			}
		}
		return tx.Create(&model.Coupon{
			CartID:      cart.ID,
			CouponCode:  code,
			CouponState: model.CouponStateInvalidCode,
		}).Error
	})
}

// クーポン1件削除
func (b *Backend) RemoveCoupon(ctx context.Context, req overture.RemoveCouponRequest) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := b.findCart(tx, req.CartKey)
		if err != nil {
			return err
		}
		if cart == nil {
			return overture.NewError(overture.CodeCouponNotFound, "coupon "+req.CouponCode+" not found")
		}

		res := tx.Where("cart_id = ? AND lower(coupon_code) = lower(?)", cart.ID, req.CouponCode).Delete(&model.Coupon{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return overture.NewError(overture.CodeCouponNotFound, "coupon "+req.CouponCode+" not found")
		}
		return nil
	})
}

// ゲストのカートを会員のカートへ移す
func (b *Backend) MergeCart(ctx context.Context, req overture.MergeCartRequest) (*model.Cart, error) {
	key := overture.CartKey{ScopeID: req.ScopeID, CustomerID: req.CustomerID, CartName: req.CartName}

	return b.mutate(ctx, key, func(tx *gorm.DB, cart *model.Cart) error {
		if req.GuestCustomerID == uuid.Nil || req.GuestCustomerID == req.CustomerID {
			return nil
		}

		guest, err := b.findCart(tx, overture.CartKey{ScopeID: req.ScopeID, CustomerID: req.GuestCustomerID, CartName: req.CartName})
		if err != nil {
			return err
		}
		if guest == nil {
			return nil
		}

		for _, gli := range guest.LineItems {
			merged := false
			for _, li := range cart.LineItems {
				if li.ProductID == gli.ProductID && li.VariantID == gli.VariantID {
					if err := tx.Model(&model.LineItem{}).Where("id = ?", li.ID).
						Update("quantity", gorm.Expr("quantity + ?", gli.Quantity)).Error; err != nil {
						return err
					}
					merged = true
					break
				}
			}
			if merged {
				continue
			}
			// 明細ごと付け替える
			if err := tx.Model(&model.LineItem{}).Where("id = ?", gli.ID).Update("cart_id", cart.ID).Error; err != nil {
				return err
			}
		}

		for _, gc := range guest.Coupons {
			exists := false
			for _, c := range cart.Coupons {
				if strings.EqualFold(c.CouponCode, gc.CouponCode) {
					exists = true
					break
				}
			}
			if !exists {
				if err := tx.Model(&model.Coupon{}).Where("id = ?", gc.ID).Update("cart_id", cart.ID).Error; err != nil {
					return err
				}
			}
		}

		// 残った明細・クーポンは外部キーの CASCADE で消える
		return tx.Where("id = ?", guest.ID).Delete(&model.Cart{}).Error
	})
}

// カートをロックして変更し、読み直してワークフローを実行する
func (b *Backend) mutate(ctx context.Context, key overture.CartKey, fn func(tx *gorm.DB, cart *model.Cart) error) (*model.Cart, error) {
	var out *model.Cart

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := b.getOrCreateCart(tx, key, "")
		if err != nil {
			return err
		}

		// 同じカートへの同時変更を直列化
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&model.Cart{}, "id = ?", cart.ID).Error; err != nil {
			return err
		}

		if err := fn(tx, cart); err != nil {
			return err
		}

		reloaded, err := b.findCart(tx, key)
		if err != nil {
			return err
		}
		if err := b.process(tx, reloaded); err != nil {
			return err
		}
		out = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// (scope, customer, name) のカート（無ければnil）
func (b *Backend) findCart(tx *gorm.DB, key overture.CartKey) (*model.Cart, error) {
	var cart model.Cart
	err := tx.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc, id asc") }).
		Preload("LineItems.AdditionalFees").
		Preload("Coupons", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("scope_id = ? AND customer_id = ? AND name = ?", key.ScopeID, key.CustomerID, key.CartName).
		First(&cart).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cart.State = model.CartStateDraft
	return &cart, nil
}

func (b *Backend) getOrCreateCart(tx *gorm.DB, key overture.CartKey, currency string) (*model.Cart, error) {
	cart, err := b.findCart(tx, key)
	if err != nil || cart != nil {
		return cart, err
	}

	if currency == "" {
		currency = b.opts.DefaultCurrency
		var scope model.Scope
		if err := tx.Where("id = ?", key.ScopeID).First(&scope).Error; err == nil && scope.CurrencyCode != "" {
			currency = scope.CurrencyCode
		}
	}

	newCart := model.Cart{
		ID:           b.ids.NewID(),
		ScopeID:      key.ScopeID,
		CustomerID:   key.CustomerID,
		Name:         key.CartName,
		CultureName:  key.CultureName,
		CurrencyCode: currency,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&newCart).Error; err != nil {
		return nil, err
	}

	// 競合で作られていた場合も読み直す
	return b.findCart(tx, key)
}

// 商品・プロモーションを読み込んでワークフローを実行し、結果を保存する
func (b *Backend) process(tx *gorm.DB, cart *model.Cart) error {
	in := workflowInput{
		products:   map[string]*model.Product{},
		promotions: map[string]*model.Promotion{},
		now:        b.clock.Now(),
	}

	var productIDs []string
	for _, li := range cart.LineItems {
		productIDs = append(productIDs, li.ProductID)
	}
	if len(productIDs) > 0 {
		var products []model.Product
		if err := tx.Preload("Variants").Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}
		for i := range products {
			in.products[products[i].ID] = &products[i]
		}
	}

	var codes []string
	for _, c := range cart.Coupons {
		codes = append(codes, strings.ToLower(c.CouponCode))
	}
	if len(codes) > 0 {
		var promos []model.Promotion
		if err := tx.Where("scope_id = ? AND lower(code) IN ?", cart.ScopeID, codes).Find(&promos).Error; err != nil {
			return err
		}
		for i := range promos {
			in.promotions[strings.ToLower(promos[i].Code)] = &promos[i]
		}
	}

	executeWorkflow(cart, in)

	for i := range cart.LineItems {
		li := &cart.LineItems[i]
		if err := tx.Model(li).
			Select("product_name", "current_price", "default_price", "discount_amount", "total", "rewards").
			Updates(li).Error; err != nil {
			return err
		}
	}
	for i := range cart.Coupons {
		c := &cart.Coupons[i]
		if err := tx.Model(c).Select("coupon_state", "promotion_id").Updates(c).Error; err != nil {
			return err
		}
	}
	return tx.Model(cart).
		Select("sub_total", "discount_total", "additional_fee_total", "total", "rewards").
		Updates(cart).Error
}
