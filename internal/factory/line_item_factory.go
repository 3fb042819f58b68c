package factory

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/provider"
	"composer/internal/viewmodel"
)

type ProductImageInfo struct {
	ImageUrls []dam.ProductMainImage
}

type CreateListOfLineItemDetailViewModelParam struct {
	Cart         *model.Cart
	LineItems    []model.LineItem
	CultureInfo  language.Tag
	CurrencyCode string
	ImageInfo    ProductImageInfo
	BaseURL      string
}

type imageKey struct {
	productID string
	variantID string
}

// 明細 -> 表示用
type LineItemViewModelFactory struct {
	localizer  Localizer
	productURL ProductURLProvider
	rewards    *RewardViewModelFactory
	validator  LineItemValidator
}

// DI
func NewLineItemViewModelFactory(
	localizer Localizer,
	productURL ProductURLProvider,
	rewards *RewardViewModelFactory,
	validator LineItemValidator,
) *LineItemViewModelFactory {
	return &LineItemViewModelFactory{
		localizer:  localizer,
		productURL: productURL,
		rewards:    rewards,
		validator:  validator,
	}
}

// CreateViewModel は入力順に明細の表示用を作る
// 言語未指定・明細nilなら空
func (f *LineItemViewModelFactory) CreateViewModel(p CreateListOfLineItemDetailViewModelParam) []viewmodel.LineItemDetailViewModel {
	if p.LineItems == nil || p.CultureInfo == language.Und {
		return []viewmodel.LineItemDetailViewModel{}
	}

	currency := p.CurrencyCode
	if currency == "" && p.Cart != nil {
		currency = p.Cart.CurrencyCode
	}
	images := buildImageDictionary(p.ImageInfo.ImageUrls)

	// 検証はワークフロー済みのカートだけ
	validate := func(model.LineItem) bool { return true }
	if p.Cart.IsProcessed() {
		cart := p.Cart
		validate = func(li model.LineItem) bool { return f.validator.ValidateLineItem(cart, li) }
	}

	out := make([]viewmodel.LineItemDetailViewModel, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		vm := f.lineItemDetail(li, p.CultureInfo, currency, images)
		vm.IsValid = validate(li)
		out = append(out, vm)
	}
	return out
}

func (f *LineItemViewModelFactory) lineItemDetail(li model.LineItem, culture language.Tag, currency string, images map[imageKey]dam.ProductMainImage) viewmodel.LineItemDetailViewModel {
	price := func(d decimal.NullDecimal) string {
		if !d.Valid {
			return ""
		}
		return f.localizer.FormatPriceIn(d.Decimal, culture, currency)
	}

	vm := viewmodel.LineItemDetailViewModel{
		ID:             li.ID,
		ProductID:      li.ProductID,
		VariantID:      li.VariantID,
		Sku:            li.Sku,
		DisplayName:    li.ProductName,
		Quantity:       li.Quantity,
		CurrentPrice:   price(li.CurrentPrice),
		DefaultPrice:   price(li.DefaultPrice),
		DiscountAmount: price(li.DiscountAmount),
		Total:          price(li.Total),
		GiftWrap:       li.GiftWrap,
		GiftMessage:    li.GiftMessage,
	}

	vm.Rewards = f.rewards.CreateViewModel(li.Rewards, culture, currency, model.RewardLevelLineItem)
	vm.IsOnSale = IsOnSale(li.CurrentPrice, li.DefaultPrice)
	vm.IsPriceDiscounted = valueOrZero(li.DiscountAmount).GreaterThan(decimal.Zero)

	savings := SavingsTotal(li)
	if !savings.IsZero() {
		vm.SavingsTotal = f.localizer.FormatPriceIn(savings, culture, currency)
	}

	vm.KeyVariantAttributesList = KeyVariantAttributes(li.KvaValues, li.KvaDisplayValues)

	if img, ok := images[imageKey{li.ProductID, li.VariantID}]; ok {
		vm.ImageURL = img.ImageURL
		vm.FallbackImageURL = img.FallbackImageURL
	}

	vm.ProductURL = f.productURL.GetProductURL(provider.GetProductURLParam{
		CultureInfo: culture,
		ProductID:   li.ProductID,
		VariantID:   li.VariantID,
		ProductName: li.ProductName,
	})

	vm.AdditionalFees = AdditionalFees(li)
	return vm
}

// IsOnSale は1セント単位（切り捨て）で現在価格が定価より安いか
func IsOnSale(current, regular decimal.NullDecimal) bool {
	if !current.Valid || !regular.Valid {
		return false
	}
	hundred := decimal.NewFromInt(100)
	return current.Decimal.Mul(hundred).IntPart() < regular.Decimal.Mul(hundred).IntPart()
}

// SavingsTotal = |(current - default) * qty| + discount
func SavingsTotal(li model.LineItem) decimal.Decimal {
	sale := valueOrZero(li.CurrentPrice).
		Sub(valueOrZero(li.DefaultPrice)).
		Mul(decimal.NewFromInt(int64(li.Quantity))).
		Abs()
	return valueOrZero(li.DiscountAmount).Add(sale)
}

// KeyVariantAttributes はキー順に表示値と組にする
// 表示値が無ければ空
func KeyVariantAttributes(values, displayValues map[string]string) []viewmodel.KeyVariantAttributes {
	if displayValues == nil {
		return []viewmodel.KeyVariantAttributes{}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]viewmodel.KeyVariantAttributes, 0, len(keys))
	for _, k := range keys {
		display, ok := displayValues[k]
		if !ok {
			display = values[k]
		}
		out = append(out, viewmodel.KeyVariantAttributes{
			Key:           k,
			Value:         display,
			OriginalValue: values[k],
		})
	}
	return out
}

// AdditionalFees は PerUnit と PerLineItem だけ合計額を持つ
func AdditionalFees(li model.LineItem) []viewmodel.AdditionalFeeViewModel {
	out := make([]viewmodel.AdditionalFeeViewModel, 0, len(li.AdditionalFees))
	for _, fee := range li.AdditionalFees {
		vm := viewmodel.AdditionalFeeViewModel{
			Name:            fee.Name,
			Description:     fee.Description,
			Amount:          fee.Amount,
			CalculationRule: string(fee.CalculationRule),
			Taxable:         fee.Taxable,
		}
		switch fee.CalculationRule {
		case model.FeePerUnit:
			vm.TotalAmount = fee.Amount.Mul(decimal.NewFromInt(int64(li.Quantity)))
		case model.FeePerLineItem:
			vm.TotalAmount = fee.Amount
		}
		out = append(out, vm)
	}
	return out
}

// (productId, variantId) ごとに最初の画像
func buildImageDictionary(images []dam.ProductMainImage) map[imageKey]dam.ProductMainImage {
	m := make(map[imageKey]dam.ProductMainImage, len(images))
	for _, img := range images {
		k := imageKey{img.ProductID, img.VariantID}
		if _, ok := m[k]; ok {
			continue
		}
		m[k] = img
	}
	return m
}

func valueOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
