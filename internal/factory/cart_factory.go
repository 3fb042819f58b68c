package factory

import (
	"strings"

	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/localization"
	"composer/internal/viewmodel"
)

type CreateCartViewModelParam struct {
	Cart                          *model.Cart
	CultureInfo                   language.Tag
	ProductImageInfo              ProductImageInfo
	BaseURL                       string
	IncludeInvalidCouponsMessages bool
}

type CartViewModelFactory struct {
	localizer Localizer
	lineItems *LineItemViewModelFactory
	rewards   *RewardViewModelFactory
}

// DI
func NewCartViewModelFactory(localizer Localizer, lineItems *LineItemViewModelFactory, rewards *RewardViewModelFactory) *CartViewModelFactory {
	return &CartViewModelFactory{localizer: localizer, lineItems: lineItems, rewards: rewards}
}

func (f *CartViewModelFactory) CreateCartViewModel(p CreateCartViewModelParam) *viewmodel.CartViewModel {
	cart := p.Cart
	if cart == nil {
		cart = &model.Cart{}
	}
	currency := cart.CurrencyCode

	vm := &viewmodel.CartViewModel{
		ID:           cart.ID,
		Name:         cart.Name,
		CustomerID:   cart.CustomerID,
		CurrencyCode: currency,
		LineItemDetailViewModels: f.lineItems.CreateViewModel(CreateListOfLineItemDetailViewModelParam{
			Cart:         cart,
			LineItems:    nonNilLineItems(cart.LineItems),
			CultureInfo:  p.CultureInfo,
			CurrencyCode: currency,
			ImageInfo:    p.ProductImageInfo,
			BaseURL:      p.BaseURL,
		}),
		LineItemCount: len(cart.LineItems),
		TotalQuantity: cart.TotalQuantity(),
		IsCartEmpty:   len(cart.LineItems) == 0,
	}

	for _, li := range vm.LineItemDetailViewModels {
		if !li.IsValid {
			vm.HasInvalidLineItems = true
			break
		}
	}

	vm.OrderSummary = viewmodel.OrderSummaryViewModel{
		SubTotal:           f.localizer.FormatPriceIn(cart.SubTotal, p.CultureInfo, currency),
		DiscountTotal:      f.localizer.FormatPriceIn(cart.DiscountTotal, p.CultureInfo, currency),
		AdditionalFeeTotal: f.localizer.FormatPriceIn(cart.AdditionalFeeTotal, p.CultureInfo, currency),
		Total:              f.localizer.FormatPriceIn(cart.Total, p.CultureInfo, currency),
		IsDiscounted:       cart.DiscountTotal.IsPositive(),
		Rewards: f.rewards.CreateViewModel(cart.Rewards, p.CultureInfo, currency,
			model.RewardLevelOrder, model.RewardLevelShipment, model.RewardLevelFulfillmentMethod),
	}

	vm.Coupons = f.coupons(cart, p.CultureInfo, p.IncludeInvalidCouponsMessages)
	return vm
}

// Ok のクーポンだけ適用中として返す
func (f *CartViewModelFactory) coupons(cart *model.Cart, culture language.Tag, includeInvalid bool) viewmodel.CouponsViewModel {
	out := viewmodel.CouponsViewModel{
		ApplicableCoupons: []viewmodel.CouponViewModel{},
		Messages:          []viewmodel.CartMessageViewModel{},
	}

	names := promotionNames(cart)
	for _, c := range cart.Coupons {
		if c.CouponState == model.CouponStateOk {
			text := c.CouponCode
			if c.PromotionID != nil {
				if name, ok := names[*c.PromotionID]; ok && name != "" {
					text = name
				}
			}
			out.ApplicableCoupons = append(out.ApplicableCoupons, viewmodel.CouponViewModel{
				CouponCode:  c.CouponCode,
				DisplayText: text,
			})
			continue
		}

		if !includeInvalid {
			continue
		}
		out.Messages = append(out.Messages, viewmodel.CartMessageViewModel{
			Message: f.localizer.GetLocalizedString(localization.GetLocalizedParam{
				Category:    "ShoppingCart",
				Key:         "F_InvalidCoupon",
				CultureInfo: culture,
			}, strings.TrimSpace(c.CouponCode)),
			Level: viewmodel.CartMessageLevelWarning,
		})
	}
	return out
}

// 値引きからプロモーション名を引く
func promotionNames(cart *model.Cart) map[int64]string {
	names := map[int64]string{}
	add := func(rs []model.Reward) {
		for _, r := range rs {
			if _, ok := names[r.PromotionID]; !ok {
				names[r.PromotionID] = r.PromotionName
			}
		}
	}
	add(cart.Rewards)
	for _, li := range cart.LineItems {
		add(li.Rewards)
	}
	return names
}

func nonNilLineItems(items []model.LineItem) []model.LineItem {
	if items == nil {
		return []model.LineItem{}
	}
	return items
}
