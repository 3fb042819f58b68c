package factory

import (
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/localization"
	"composer/internal/viewmodel"
)

// 注文詳細のURL
type OrderURLProvider interface {
	GetOrderDetailURL(culture language.Tag, orderNumber string) string
}

type CreateOrderViewModelParam struct {
	Order            *model.Order
	CultureInfo      language.Tag
	ProductImageInfo ProductImageInfo
	BaseURL          string
}

type OrderViewModelFactory struct {
	localizer Localizer
	lineItems *LineItemViewModelFactory
	rewards   *RewardViewModelFactory
	urls      OrderURLProvider
}

// DI
func NewOrderViewModelFactory(localizer Localizer, lineItems *LineItemViewModelFactory, rewards *RewardViewModelFactory, urls OrderURLProvider) *OrderViewModelFactory {
	return &OrderViewModelFactory{localizer: localizer, lineItems: lineItems, rewards: rewards, urls: urls}
}

// 明細はカート明細と同じ表示（検証はしない）
func (f *OrderViewModelFactory) CreateOrderViewModel(p CreateOrderViewModelParam) *viewmodel.OrderViewModel {
	o := p.Order
	if o == nil {
		o = &model.Order{}
	}
	currency := o.CurrencyCode

	items := make([]model.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, it.LineItem())
	}

	return &viewmodel.OrderViewModel{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		Status:            string(o.Status),
		StatusDisplayName: f.statusDisplayName(o.Status, p.CultureInfo),
		OrderDate:         o.CreatedAt,
		CurrencyCode:      currency,
		LineItemDetailViewModels: f.lineItems.CreateViewModel(CreateListOfLineItemDetailViewModelParam{
			LineItems:    items,
			CultureInfo:  p.CultureInfo,
			CurrencyCode: currency,
			ImageInfo:    p.ProductImageInfo,
			BaseURL:      p.BaseURL,
		}),
		TotalQuantity: o.TotalQuantity(),
		OrderSummary: viewmodel.OrderSummaryViewModel{
			SubTotal:           f.localizer.FormatPriceIn(o.SubTotal, p.CultureInfo, currency),
			DiscountTotal:      f.localizer.FormatPriceIn(o.DiscountTotal, p.CultureInfo, currency),
			AdditionalFeeTotal: f.localizer.FormatPriceIn(o.AdditionalFeeTotal, p.CultureInfo, currency),
			Total:              f.localizer.FormatPriceIn(o.Total, p.CultureInfo, currency),
			IsDiscounted:       o.DiscountTotal.IsPositive(),
			Rewards: f.rewards.CreateViewModel(o.Rewards, p.CultureInfo, currency,
				model.RewardLevelOrder, model.RewardLevelShipment, model.RewardLevelFulfillmentMethod),
		},
		CouponCodes:    nonNilStrings(o.CouponCodes),
		OrderDetailURL: f.urls.GetOrderDetailURL(p.CultureInfo, o.OrderNumber),
	}
}

func (f *OrderViewModelFactory) CreateOrderHistoryViewModel(res *model.OrderQueryResult, culture language.Tag, page, pageSize int) *viewmodel.OrderHistoryViewModel {
	vm := &viewmodel.OrderHistoryViewModel{
		Orders:   []viewmodel.OrderHistoryItemViewModel{},
		Page:     page,
		PageSize: pageSize,
	}
	if res == nil {
		return vm
	}

	vm.TotalCount = res.TotalCount
	if pageSize > 0 {
		vm.TotalPages = int((res.TotalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	for i := range res.Orders {
		o := &res.Orders[i]
		vm.Orders = append(vm.Orders, viewmodel.OrderHistoryItemViewModel{
			OrderNumber:       o.OrderNumber,
			Status:            string(o.Status),
			StatusDisplayName: f.statusDisplayName(o.Status, culture),
			OrderDate:         o.CreatedAt,
			Total:             f.localizer.FormatPriceIn(o.Total, culture, o.CurrencyCode),
			TotalQuantity:     o.TotalQuantity(),
			OrderDetailURL:    f.urls.GetOrderDetailURL(culture, o.OrderNumber),
		})
	}
	return vm
}

// 未登録の状態はそのまま
func (f *OrderViewModelFactory) statusDisplayName(status model.OrderStatus, culture language.Tag) string {
	name := f.localizer.GetLocalizedString(localization.GetLocalizedParam{
		Category:    "Orders",
		Key:         "L_OrderStatus_" + string(status),
		CultureInfo: culture,
	})
	if name == "" {
		return string(status)
	}
	return name
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
