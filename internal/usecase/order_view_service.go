package usecase

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/localization"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

type OrderViewModelFactory interface {
	CreateOrderViewModel(p factory.CreateOrderViewModelParam) *viewmodel.OrderViewModel
	CreateOrderHistoryViewModel(res *model.OrderQueryResult, culture language.Tag, page, pageSize int) *viewmodel.OrderHistoryViewModel
}

var _ OrderViewModelFactory = (*factory.OrderViewModelFactory)(nil)

// チェックアウトと注文履歴
type OrderViewService struct {
	orderRepo    repo.OrderRepository
	orderFactory OrderViewModelFactory
	lineItems    *LineItemService
	localizer    Localizer
	logger       *zap.Logger
}

// DI
func NewOrderViewService(orderRepo repo.OrderRepository, orderFactory OrderViewModelFactory, lineItems *LineItemService, localizer Localizer, logger *zap.Logger) *OrderViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderViewService{orderRepo: orderRepo, orderFactory: orderFactory, lineItems: lineItems, localizer: localizer, logger: logger}
}

// CompleteCheckout は再計算済みのカートから注文を作る
// カートの状態で注文できないときは 400
func (s *OrderViewService) CompleteCheckout(ctx context.Context, p *param.CompleteCheckoutParam) (*viewmodel.OrderViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}

	order, err := s.orderRepo.CompleteCheckout(ctx, p)
	if err != nil {
		if oe, ok := overture.AsError(err); ok {
			switch oe.Code {
			case overture.CodeEmptyCart, overture.CodeInvalidCart, overture.CodeInsufficientQuantity, overture.CodeProductNotFound:
				return nil, NewHTTPError(http.StatusBadRequest, s.errorMessage(oe, p.CultureInfo))
			}
		}
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("orderNumber", order.OrderNumber),
		zap.String("customerId", order.CustomerID.String()),
		zap.String("total", order.Total.String()),
	)
	return s.viewModel(ctx, order, p.CultureInfo, p.BaseURL)
}

func (s *OrderViewService) GetOrderHistory(ctx context.Context, p *param.GetCustomerOrdersParam) (*viewmodel.OrderHistoryViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	res, err := s.orderRepo.GetCustomerOrders(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.orderFactory.CreateOrderHistoryViewModel(res, p.CultureInfo, p.Page, p.PageSize), nil
}

// 他人の注文は存在しない扱い
func (s *OrderViewService) GetOrder(ctx context.Context, p *param.GetOrderParam) (*viewmodel.OrderViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	order, err := s.orderRepo.GetOrder(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, err
	}
	return s.viewModel(ctx, order, p.CultureInfo, p.BaseURL)
}

func (s *OrderViewService) viewModel(ctx context.Context, order *model.Order, culture language.Tag, baseURL string) (*viewmodel.OrderViewModel, error) {
	items := make([]model.LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, it.LineItem())
	}
	images, err := s.lineItems.GetImageUrls(ctx, items)
	if err != nil {
		return nil, err
	}
	return s.orderFactory.CreateOrderViewModel(factory.CreateOrderViewModelParam{
		Order:            order,
		CultureInfo:      culture,
		ProductImageInfo: factory.ProductImageInfo{ImageUrls: images},
		BaseURL:          baseURL,
	}), nil
}

func (s *OrderViewService) errorMessage(oe *overture.Error, culture language.Tag) string {
	if s.localizer != nil {
		if msg := s.localizer.GetLocalizedString(localization.GetLocalizedParam{
			Category:    "Errors",
			Key:         "L_" + oe.Code,
			CultureInfo: culture,
		}); msg != "" {
			return msg
		}
	}
	return oe.Message
}
