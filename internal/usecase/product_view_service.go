package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/param"
	"composer/internal/provider"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

// 商品詳細
type ProductViewService struct {
	productRepo repo.ProductRepository
	images      ImageProvider
	productURL  factory.ProductURLProvider
	localizer   Localizer
	logger      *zap.Logger
}

// DI
func NewProductViewService(
	productRepo repo.ProductRepository,
	images ImageProvider,
	productURL factory.ProductURLProvider,
	localizer Localizer,
	logger *zap.Logger,
) *ProductViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductViewService{
		productRepo: productRepo,
		images:      images,
		productURL:  productURL,
		localizer:   localizer,
		logger:      logger,
	}
}

// 非公開の商品は存在しない扱い
func (s *ProductViewService) GetProduct(ctx context.Context, p *param.GetProductParam) (*viewmodel.ProductViewModel, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	prod, err := s.productRepo.GetProduct(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return nil, err
	}
	if !prod.IsActive {
		return nil, NewHTTPError(http.StatusNotFound, "product not found")
	}

	prices, err := s.productRepo.CalculatePrices(ctx, &param.ProductPricesParam{
		Scope:      p.Scope,
		ProductIDs: []string{prod.ID},
	})
	if err != nil {
		return nil, err
	}
	price := priceOf(prices, prod)

	var attributes []string
	if prod.DefinitionName != "" {
		def, err := s.productRepo.GetProductDefinition(ctx, &param.GetProductDefinitionParam{
			Name:        prod.DefinitionName,
			CultureInfo: p.CultureInfo,
		})
		switch {
		case errors.Is(err, repo.ErrNotFound):
			s.logger.Debug("product definition missing", zap.String("definition", prod.DefinitionName))
		case err != nil:
			return nil, err
		default:
			attributes = def.Attributes
		}
	}

	images, err := s.images.GetProductMainImages(ctx, dam.GetProductMainImagesParam{
		ImageSize:            "L",
		ProductImageRequests: []dam.ProductImageRequest{{ProductID: prod.ID}},
	})
	if err != nil {
		return nil, err
	}

	vm := &viewmodel.ProductViewModel{
		ProductID:      prod.ID,
		DisplayName:    prod.DisplayName,
		Description:    prod.Description,
		Sku:            prod.Sku,
		DefinitionName: prod.DefinitionName,
		Attributes:     attributes,
		ListPrice:      s.localizer.FormatPrice(price.DefaultPrice, p.CultureInfo),
		DisplayPrice:   s.localizer.FormatPrice(price.Price, p.CultureInfo),
		IsOnSale:       onSale(price.Price, price.DefaultPrice),
		ProductURL: s.productURL.GetProductURL(provider.GetProductURLParam{
			CultureInfo: p.CultureInfo,
			ProductID:   prod.ID,
			ProductName: prod.DisplayName,
		}),
		Variants: make([]viewmodel.ProductVariantViewModel, 0, len(prod.Variants)),
	}
	if len(images) > 0 {
		vm.ImageURL = images[0].ImageURL
		vm.FallbackImageURL = images[0].FallbackImageURL
	}

	for _, v := range prod.Variants {
		if !v.IsActive {
			continue
		}
		vp := variantPriceOf(price, prod, v.ID)
		vm.Variants = append(vm.Variants, viewmodel.ProductVariantViewModel{
			VariantID:        v.ID,
			Sku:              v.Sku,
			KvaValues:        v.KvaValues,
			KvaDisplayValues: v.KvaDisplayValues,
			ListPrice:        s.localizer.FormatPrice(vp.DefaultPrice, p.CultureInfo),
			DisplayPrice:     s.localizer.FormatPrice(vp.Price, p.CultureInfo),
			IsOnSale:         onSale(vp.Price, vp.DefaultPrice),
		})
	}
	return vm, nil
}

// 計算結果が無ければ商品の定価・販売価格
func priceOf(prices []model.ProductPrice, prod *model.Product) model.ProductPrice {
	for _, pp := range prices {
		if pp.ProductID == prod.ID {
			return pp
		}
	}
	current, regular := prod.PriceFor("")
	return model.ProductPrice{ProductID: prod.ID, DefaultPrice: regular, Price: current}
}

func variantPriceOf(price model.ProductPrice, prod *model.Product, variantID string) model.VariantPrice {
	for _, vp := range price.VariantPrices {
		if vp.VariantID == variantID {
			return vp
		}
	}
	current, regular := prod.PriceFor(variantID)
	return model.VariantPrice{VariantID: variantID, DefaultPrice: regular, Price: current}
}

func onSale(current, regular decimal.Decimal) bool {
	return factory.IsOnSale(decimal.NewNullDecimal(current), decimal.NewNullDecimal(regular))
}
