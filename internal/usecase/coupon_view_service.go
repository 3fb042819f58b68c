package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/localization"
	"composer/internal/param"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

// クーポンの追加・削除
type CouponViewService struct {
	cartRepo    repo.CartRepository
	cartFactory CartViewModelFactory
	localizer   Localizer
	lineItems   *LineItemService
	logger      *zap.Logger
}

// DI
func NewCouponViewService(
	cartRepo repo.CartRepository,
	cartFactory CartViewModelFactory,
	localizer Localizer,
	lineItems *LineItemService,
	logger *zap.Logger,
) *CouponViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CouponViewService{
		cartRepo:    cartRepo,
		cartFactory: cartFactory,
		localizer:   localizer,
		lineItems:   lineItems,
		logger:      logger,
	}
}

// GetInvalidCouponsCode は Ok 以外のコード
func GetInvalidCouponsCode(coupons []model.Coupon) []string {
	codes := []string{}
	for _, c := range coupons {
		if c.CouponState != model.CouponStateOk {
			codes = append(codes, c.CouponCode)
		}
	}
	return codes
}

// AddCoupon は適用後に無効なクーポンを外して表示用を返す
func (s *CouponViewService) AddCoupon(ctx context.Context, p *param.CouponParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}

	cart, err := s.cartRepo.AddCoupon(ctx, p)
	if err != nil {
		return nil, err
	}

	if invalid := GetInvalidCouponsCode(cart.Coupons); len(invalid) > 0 {
		s.logger.Debug("remove invalid coupons", zap.Strings("codes", invalid))
		if err := s.cartRepo.RemoveCoupons(ctx, &param.RemoveCouponsParam{
			Scope:       p.Scope,
			CustomerID:  p.CustomerID,
			CartName:    p.CartName,
			CouponCodes: invalid,
		}); err != nil {
			return nil, err
		}
	}

	vm, err := s.createCartViewModel(ctx, &factory.CreateCartViewModelParam{
		Cart:                          cart,
		CultureInfo:                   p.CultureInfo,
		IncludeInvalidCouponsMessages: true,
		BaseURL:                       p.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	s.addSuccessMessageIfRequired(p, vm)
	return vm, nil
}

func (s *CouponViewService) addSuccessMessageIfRequired(p *param.CouponParam, vm *viewmodel.CartViewModel) {
	for _, c := range vm.Coupons.ApplicableCoupons {
		if !strings.EqualFold(c.CouponCode, p.CouponCode) {
			continue
		}
		msg := s.localizer.GetLocalizedString(localization.GetLocalizedParam{
			Category:    "ShoppingCart",
			Key:         "F_PromoCodeSucces",
			CultureInfo: p.CultureInfo,
		}, p.CouponCode)
		vm.Coupons.Messages = append(vm.Coupons.Messages, viewmodel.CartMessageViewModel{
			Message: msg,
			Level:   viewmodel.CartMessageLevelSuccess,
		})
		return
	}
}

// RemoveCoupon はコードを外す（空なら全クーポン）
// 削除後はワークフローを実行したカートで表示用を作る
func (s *CouponViewService) RemoveCoupon(ctx context.Context, p *param.CouponParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}

	codes := []string{p.CouponCode}
	if strings.TrimSpace(p.CouponCode) == "" {
		current, err := s.cartRepo.GetCart(ctx, &param.GetCartParam{
			Scope:       p.Scope,
			CultureInfo: p.CultureInfo,
			CustomerID:  p.CustomerID,
			CartName:    p.CartName,
		})
		if err != nil {
			return nil, err
		}
		codes = make([]string, 0, len(current.Coupons))
		for _, c := range current.Coupons {
			codes = append(codes, c.CouponCode)
		}
	}

	if err := s.cartRepo.RemoveCoupons(ctx, &param.RemoveCouponsParam{
		Scope:       p.Scope,
		CustomerID:  p.CustomerID,
		CartName:    p.CartName,
		CouponCodes: codes,
	}); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetCart(ctx, &param.GetCartParam{
		Scope:           p.Scope,
		CultureInfo:     p.CultureInfo,
		CustomerID:      p.CustomerID,
		CartName:        p.CartName,
		BaseURL:         p.BaseURL,
		ExecuteWorkflow: true,
	})
	if err != nil {
		return nil, err
	}

	return s.createCartViewModel(ctx, &factory.CreateCartViewModelParam{
		Cart:                          cart,
		CultureInfo:                   p.CultureInfo,
		IncludeInvalidCouponsMessages: true,
		BaseURL:                       p.BaseURL,
	})
}

func (s *CouponViewService) createCartViewModel(ctx context.Context, p *factory.CreateCartViewModelParam) (*viewmodel.CartViewModel, error) {
	return buildCartViewModel(ctx, s.lineItems, s.cartFactory, p)
}

// 画像を引いてから factory に渡す
func buildCartViewModel(ctx context.Context, lineItems *LineItemService, f CartViewModelFactory, p *factory.CreateCartViewModelParam) (*viewmodel.CartViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	if p.Cart == nil {
		return nil, param.Invalid("param.Cart", "cannot be null")
	}
	if p.BaseURL == "" {
		return nil, param.Invalid("param.BaseUrl", "cannot be null")
	}

	images, err := lineItems.GetImageUrls(ctx, p.Cart.GetLineItems())
	if err != nil {
		return nil, err
	}
	p.ProductImageInfo = factory.ProductImageInfo{ImageUrls: images}

	return f.CreateCartViewModel(*p), nil
}
