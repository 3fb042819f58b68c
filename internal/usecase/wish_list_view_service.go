package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/param"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

type LineItemViewModelFactory interface {
	CreateViewModel(p factory.CreateListOfLineItemDetailViewModelParam) []viewmodel.LineItemDetailViewModel
}

var _ LineItemViewModelFactory = (*factory.LineItemViewModelFactory)(nil)

// ウィッシュリスト（名前の違うカート）
// 明細は商品・バリエーションごとに1件、数量は常に1
type WishListViewService struct {
	cartRepo  repo.CartRepository
	items     LineItemViewModelFactory
	lineItems *LineItemService
	urls      MyAccountURLProvider
	logger    *zap.Logger
}

// DI
func NewWishListViewService(cartRepo repo.CartRepository, items LineItemViewModelFactory, lineItems *LineItemService, urls MyAccountURLProvider, logger *zap.Logger) *WishListViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WishListViewService{cartRepo: cartRepo, items: items, lineItems: lineItems, urls: urls, logger: logger}
}

// 再計算はしない（価格は追加時点のまま）
func (s *WishListViewService) GetWishList(ctx context.Context, p *param.GetCartParam) (*viewmodel.WishListViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	q := *p
	q.ExecuteWorkflow = false

	cart, err := s.cartRepo.GetCart(ctx, &q)
	if err != nil {
		return nil, err
	}
	return s.viewModel(ctx, cart, p.CultureInfo, p.BaseURL)
}

// ゲストには空のリストとサインインURLだけ返す
func (s *WishListViewService) GuestWishList(culture language.Tag) *viewmodel.WishListViewModel {
	return &viewmodel.WishListViewModel{
		Items:     []viewmodel.LineItemDetailViewModel{},
		IsEmpty:   true,
		SignInURL: s.urls.GetLoginURL(culture),
	}
}

// 既にある商品は追加しない
func (s *WishListViewService) AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*viewmodel.WishListViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	q := *p
	q.Quantity = 1
	if err := q.Validate(); err != nil {
		return nil, err
	}

	current, err := s.cartRepo.GetCart(ctx, &param.GetCartParam{
		Scope:       q.Scope,
		CultureInfo: q.CultureInfo,
		CustomerID:  q.CustomerID,
		CartName:    q.CartName,
		BaseURL:     q.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	for _, li := range current.GetLineItems() {
		if li.ProductID == q.ProductID && li.VariantID == q.VariantID {
			return s.viewModel(ctx, current, q.CultureInfo, q.BaseURL)
		}
	}

	cart, err := s.cartRepo.AddLineItem(ctx, &q)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("wish list item added", zap.String("productId", q.ProductID), zap.String("variantId", q.VariantID))
	return s.viewModel(ctx, cart, q.CultureInfo, q.BaseURL)
}

func (s *WishListViewService) RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*viewmodel.WishListViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	cart, err := s.cartRepo.RemoveLineItem(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.viewModel(ctx, cart, p.CultureInfo, p.BaseURL)
}

func (s *WishListViewService) viewModel(ctx context.Context, cart *model.Cart, culture language.Tag, baseURL string) (*viewmodel.WishListViewModel, error) {
	images, err := s.lineItems.GetImageUrls(ctx, cart.GetLineItems())
	if err != nil {
		return nil, err
	}

	items := cart.GetLineItems()
	if items == nil {
		items = []model.LineItem{}
	}
	currency := ""
	if cart != nil {
		currency = cart.CurrencyCode
	}
	vm := &viewmodel.WishListViewModel{
		Items: s.items.CreateViewModel(factory.CreateListOfLineItemDetailViewModelParam{
			Cart:         cart,
			LineItems:    items,
			CultureInfo:  culture,
			CurrencyCode: currency,
			ImageInfo:    factory.ProductImageInfo{ImageUrls: images},
			BaseURL:      baseURL,
		}),
		TotalQuantity: cart.TotalQuantity(),
		SignInURL:     s.urls.GetLoginURL(culture),
	}
	vm.IsEmpty = len(vm.Items) == 0
	return vm, nil
}
