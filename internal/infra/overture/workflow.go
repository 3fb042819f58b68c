package overture

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"composer/internal/domain/model"
)

// 明細の検証メッセージコード
const MessageProductUnavailable = "ProductUnavailable"

var hundred = decimal.NewFromInt(100)

type workflowInput struct {
	// productID → 商品
	products map[string]*model.Product
	// 小文字のコード → プロモーション
	promotions map[string]*model.Promotion
	now        time.Time
}

// カートを再計算して Processed にする
// 価格の更新、クーポンの判定と値引き、追加料金、合計
func executeWorkflow(cart *model.Cart, in workflowInput) {
	cart.Messages = nil
	cart.Rewards = nil

	for i := range cart.LineItems {
		refreshLineItem(cart, &cart.LineItems[i], in.products)
	}

	var orderPromotions []*model.Promotion
	for i := range cart.Coupons {
		c := &cart.Coupons[i]
		p := in.promotions[strings.ToLower(c.CouponCode)]
		c.CouponState = evaluateCoupon(p, in.now)
		c.PromotionID = nil
		if c.CouponState != model.CouponStateOk {
			continue
		}

		id := p.ID
		c.PromotionID = &id

		if p.TargetSku == "" {
			orderPromotions = append(orderPromotions, p)
			continue
		}
		if !applyLineItemPromotion(cart, p) {
			c.CouponState = model.CouponStateNotApplicable
			c.PromotionID = nil
		}
	}

	subTotal := decimal.Zero
	lineDiscounts := decimal.Zero
	for i := range cart.LineItems {
		li := &cart.LineItems[i]
		gross := li.CurrentPrice.Decimal.Mul(decimal.NewFromInt(int64(li.Quantity)))
		discount := li.DiscountAmount.Decimal
		total := gross.Sub(discount)
		if total.IsNegative() {
			total = decimal.Zero
		}
		li.Total = decimal.NewNullDecimal(total)
		subTotal = subTotal.Add(total)
		lineDiscounts = lineDiscounts.Add(discount)
	}

	orderDiscount := decimal.Zero
	for _, p := range orderPromotions {
		amount := discountFor(p, subTotal.Sub(orderDiscount))
		orderDiscount = orderDiscount.Add(amount)
		cart.Rewards = append(cart.Rewards, model.Reward{
			PromotionID:   p.ID,
			PromotionName: p.Name,
			Description:   p.Description,
			Amount:        amount,
			Level:         model.RewardLevelOrder,
		})
	}

	fees := additionalFeeTotal(cart.LineItems)

	cart.SubTotal = subTotal
	cart.DiscountTotal = lineDiscounts.Add(orderDiscount)
	cart.AdditionalFeeTotal = fees
	cart.Total = subTotal.Sub(orderDiscount).Add(fees)
	cart.State = model.CartStateProcessed
}

// 商品から価格と名前を取り直す
func refreshLineItem(cart *model.Cart, li *model.LineItem, products map[string]*model.Product) {
	li.DiscountAmount = decimal.NewNullDecimal(decimal.Zero)
	li.Rewards = nil

	p := products[li.ProductID]
	if p == nil || !p.IsActive {
		cart.Messages = append(cart.Messages, model.LineItemMessage{
			LineItemID: li.ID,
			Code:       MessageProductUnavailable,
			Message:    "product is no longer available",
		})
		return
	}

	current, regular := p.PriceFor(li.VariantID)
	li.CurrentPrice = decimal.NewNullDecimal(current)
	li.DefaultPrice = decimal.NewNullDecimal(regular)
	li.ProductName = p.DisplayName
}

// プロモーションの有効性
func evaluateCoupon(p *model.Promotion, now time.Time) model.CouponState {
	switch {
	case p == nil || !p.IsActive:
		return model.CouponStateInvalidCode
	case p.StartAt != nil && now.Before(*p.StartAt):
		return model.CouponStateNotActiveYet
	case p.EndAt != nil && now.After(*p.EndAt):
		return model.CouponStateExpired
	case p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit:
		return model.CouponStateUsageLimitReached
	default:
		return model.CouponStateOk
	}
}

// 対象SKUの明細に値引きを付ける（対象が無ければfalse）
func applyLineItemPromotion(cart *model.Cart, p *model.Promotion) bool {
	applied := false
	for i := range cart.LineItems {
		li := &cart.LineItems[i]
		if !strings.EqualFold(li.Sku, p.TargetSku) {
			continue
		}

		gross := li.CurrentPrice.Decimal.Mul(decimal.NewFromInt(int64(li.Quantity)))
		remaining := gross.Sub(li.DiscountAmount.Decimal)
		amount := discountFor(p, remaining)

		li.DiscountAmount = decimal.NewNullDecimal(li.DiscountAmount.Decimal.Add(amount))
		li.Rewards = append(li.Rewards, model.Reward{
			PromotionID:   p.ID,
			PromotionName: p.Name,
			Description:   p.Description,
			Amount:        amount,
			Level:         model.RewardLevelLineItem,
		})
		applied = true
	}
	return applied
}

// base に対する値引き額（base を超えない）
func discountFor(p *model.Promotion, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	amount := base.Mul(p.DiscountPercent).Div(hundred).Add(p.DiscountAmount).Round(2)
	if amount.GreaterThan(base) {
		return base
	}
	return amount
}

// 追加料金の合計
// PerOrder は同じ名前の料金を注文で1回だけ数える
func additionalFeeTotal(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	perOrder := map[string]struct{}{}

	for _, li := range items {
		qty := decimal.NewFromInt(int64(li.Quantity))
		for _, fee := range li.AdditionalFees {
			switch fee.CalculationRule {
			case model.FeePerUnit:
				total = total.Add(fee.Amount.Mul(qty))
			case model.FeePerLineItem:
				total = total.Add(fee.Amount)
			case model.FeePerOrder:
				if _, seen := perOrder[fee.Name]; seen {
					continue
				}
				perOrder[fee.Name] = struct{}{}
				total = total.Add(fee.Amount)
			}
		}
	}
	return total
}
