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

// カートと明細の操作
type CartViewService struct {
	cartRepo    repo.CartRepository
	cartFactory CartViewModelFactory
	lineItems   *LineItemService
	logger      *zap.Logger
}

// DI
func NewCartViewService(cartRepo repo.CartRepository, cartFactory CartViewModelFactory, lineItems *LineItemService, logger *zap.Logger) *CartViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartViewService{cartRepo: cartRepo, cartFactory: cartFactory, lineItems: lineItems, logger: logger}
}

// GetCart は表示のたびにワークフローを実行する
func (s *CartViewService) GetCart(ctx context.Context, p *param.GetCartParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	q := *p
	q.ExecuteWorkflow = true

	cart, err := s.cartRepo.GetCart(ctx, &q)
	if err != nil {
		return nil, err
	}
	return s.viewModel(ctx, cart, p.CultureInfo, p.BaseURL)
}

func (s *CartViewService) AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	cart, err := s.cartRepo.AddLineItem(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("line item added", zap.String("productId", p.ProductID), zap.Int("quantity", p.Quantity))
	return s.viewModel(ctx, cart, p.CultureInfo, p.BaseURL)
}

func (s *CartViewService) UpdateLineItem(ctx context.Context, p *param.UpdateLineItemParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	cart, err := s.cartRepo.UpdateLineItem(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.viewModel(ctx, cart, p.CultureInfo, p.BaseURL)
}

func (s *CartViewService) RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	cart, err := s.cartRepo.RemoveLineItem(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.viewModel(ctx, cart, p.CultureInfo, p.BaseURL)
}

func (s *CartViewService) viewModel(ctx context.Context, cart *model.Cart, culture language.Tag, baseURL string) (*viewmodel.CartViewModel, error) {
	return buildCartViewModel(ctx, s.lineItems, s.cartFactory, &factory.CreateCartViewModelParam{
		Cart:        cart,
		CultureInfo: culture,
		BaseURL:     baseURL,
	})
}
