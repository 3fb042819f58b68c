package overture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

// CompleteCheckout はカートを再計算して注文にする
// 在庫引当、クーポン利用数、カート削除まで1トランザクション
func (b *Backend) CompleteCheckout(ctx context.Context, req overture.CompleteCheckoutRequest) (*model.Order, error) {
	var out *model.Order
	key := strings.TrimSpace(req.IdempotencyKey)

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同じキーなら同じ結果
		if key != "" {
			existing, err := b.findOrder(tx.Where("customer_id = ? AND idempotency_key = ?", req.CustomerID, key))
			if err != nil {
				return err
			}
			if existing != nil {
				out = existing
				return nil
			}
		}

		cart, err := b.findCart(tx, req.CartKey)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.LineItems) == 0 {
			return overture.NewError(overture.CodeEmptyCart, "cart "+req.CartName+" is empty")
		}

		// 同じカートの二重チェックアウトを防ぐ
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&model.Cart{}, "id = ?", cart.ID).Error; err != nil {
			return err
		}

		if err := b.process(tx, cart); err != nil {
			return err
		}
		if len(cart.Messages) > 0 {
			return overture.NewError(overture.CodeInvalidCart, cart.Messages[0].Message)
		}

		if err := b.reserveInventory(tx, cart); err != nil {
			return err
		}
		if err := b.consumeCoupons(tx, cart.Coupons); err != nil {
			return err
		}

		order := newOrder(cart, b.ids.NewID(), b.clock.Now())
		if key != "" {
			order.IdempotencyKey = &key
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// 明細・クーポンは CASCADE で消える
		if err := tx.Where("id = ?", cart.ID).Delete(&model.Cart{}).Error; err != nil {
			return err
		}

		if err := b.audit(tx, cart.ScopeID, cart.CustomerID, model.AuditActionCheckout, map[string]string{
			"orderNumber": order.OrderNumber,
			"total":       order.Total.String(),
		}); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// 会員の注文（新しい順）
func (b *Backend) GetOrders(ctx context.Context, req overture.GetOrdersRequest) (*model.OrderQueryResult, error) {
	page, size := req.Page, req.PageSize
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > overture.MaxOrderPageSize {
		size = overture.MaxOrderPageSize
	}

	db := b.db.WithContext(ctx)
	q := db.Model(&model.Order{}).Where("scope_id = ? AND customer_id = ?", req.ScopeID, req.CustomerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := db.Preload("Items", orderedItems).
		Where("scope_id = ? AND customer_id = ?", req.ScopeID, req.CustomerID).
		Order("created_at desc, order_number desc").
		Limit(size).
		Offset((page - 1) * size).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return &model.OrderQueryResult{Orders: orders, TotalCount: total}, nil
}

func (b *Backend) GetOrder(ctx context.Context, req overture.GetOrderRequest) (*model.Order, error) {
	o, err := b.findOrder(b.db.WithContext(ctx).
		Where("scope_id = ? AND customer_id = ? AND order_number = ?", req.ScopeID, req.CustomerID, req.OrderNumber))
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, overture.NewError(overture.CodeOrderNotFound, "order "+req.OrderNumber+" not found")
	}
	return o, nil
}

func (b *Backend) UpdateOrderCustomer(ctx context.Context, req overture.UpdateOrderCustomerRequest) (*model.Order, error) {
	var out *model.Order

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := b.findOrder(tx.Where("scope_id = ? AND order_number = ?", req.ScopeID, req.OrderNumber))
		if err != nil {
			return err
		}
		if o == nil {
			return overture.NewError(overture.CodeOrderNotFound, "order "+req.OrderNumber+" not found")
		}
		if o.CustomerID == req.CustomerID {
			out = o
			return nil
		}

		previous := o.CustomerID
		if err := tx.Model(&model.Order{}).Where("id = ?", o.ID).Update("customer_id", req.CustomerID).Error; err != nil {
			return err
		}
		if err := b.audit(tx, req.ScopeID, req.CustomerID, model.AuditActionReassignOrder, map[string]string{
			"orderNumber":        o.OrderNumber,
			"previousCustomerId": previous.String(),
		}); err != nil {
			return err
		}
		o.CustomerID = req.CustomerID
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

// 条件に合う注文1件（無ければnil）
func (b *Backend) findOrder(q *gorm.DB) (*model.Order, error) {
	var o model.Order
	err := q.Preload("Items", orderedItems).First(&o).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// 既定拠点の在庫を減らす（足りなければバックオーダー枠から）
func (b *Backend) reserveInventory(tx *gorm.DB, cart *model.Cart) error {
	var scope model.Scope
	err := tx.Where("id = ?", cart.ScopeID).First(&scope).Error
	if isNotFound(err) {
		return overture.NewError(overture.CodeScopeNotFound, "scope "+cart.ScopeID+" not found")
	}
	if err != nil {
		return err
	}
	if !scope.IsInventoryEnabled {
		return nil
	}

	for _, sku := range quantitiesBySku(cart.LineItems) {
		base := tx.Model(&model.InventoryItem{}).
			Where("scope_id = ? AND sku = ? AND inventory_location_id = ?", cart.ScopeID, sku.sku, scope.DefaultInventoryLocationID).
			Session(&gorm.Session{})

		res := base.
			Where("quantity >= ?", sku.quantity).
			Update("quantity", gorm.Expr("quantity - ?", sku.quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			continue
		}

		res = base.
			Where("allow_back_order = ? AND back_order_limit >= ?", true, sku.quantity).
			Update("back_order_limit", gorm.Expr("back_order_limit - ?", sku.quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return overture.NewError(overture.CodeInsufficientQuantity, "sku "+sku.sku+" is not available")
		}
	}
	return nil
}

// 適用中のクーポンだけ利用数を数える
func (b *Backend) consumeCoupons(tx *gorm.DB, coupons []model.Coupon) error {
	for _, c := range coupons {
		if c.CouponState != model.CouponStateOk || c.PromotionID == nil {
			continue
		}
		if err := tx.Model(&model.Promotion{}).Where("id = ?", *c.PromotionID).
			Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
			return err
		}
	}
	return nil
}

type skuQuantity struct {
	sku      string
	quantity int
}

// SKUごとの数量（明細の順を保つ）
func quantitiesBySku(items []model.LineItem) []skuQuantity {
	idx := map[string]int{}
	var out []skuQuantity
	for _, li := range items {
		sku := li.Sku
		if sku == "" {
			sku = li.ProductID
		}
		if i, ok := idx[sku]; ok {
			out[i].quantity += li.Quantity
			continue
		}
		idx[sku] = len(out)
		out = append(out, skuQuantity{sku: sku, quantity: li.Quantity})
	}
	return out
}

// 再計算済みのカートから注文を組み立てる
func newOrder(cart *model.Cart, id uuid.UUID, now time.Time) model.Order {
	o := model.Order{
		ID:                 id,
		ScopeID:            cart.ScopeID,
		CustomerID:         cart.CustomerID,
		OrderNumber:        orderNumber(id, now),
		CartName:           cart.Name,
		Status:             model.OrderStatusNew,
		CultureName:        cart.CultureName,
		CurrencyCode:       cart.CurrencyCode,
		Rewards:            cart.Rewards,
		SubTotal:           cart.SubTotal,
		DiscountTotal:      cart.DiscountTotal,
		AdditionalFeeTotal: cart.AdditionalFeeTotal,
		Total:              cart.Total,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, li := range cart.LineItems {
		it := model.NewOrderItem(li)
		it.OrderID = id
		o.Items = append(o.Items, it)
	}
	for _, c := range cart.Coupons {
		if c.CouponState == model.CouponStateOk {
			o.CouponCodes = append(o.CouponCodes, c.CouponCode)
		}
	}
	return o
}

// 日付 + IDの先頭8桁（例: 20261014-1A2B3C4D）
func orderNumber(id uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s-%s", now.UTC().Format("20060102"), strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8]))
}
