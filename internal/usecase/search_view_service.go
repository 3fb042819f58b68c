package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/param"
	"composer/internal/provider"
	repo "composer/internal/repository"
	"composer/internal/search"
	"composer/internal/viewmodel"
)

// 価格ファセットのフィールド名
const PriceFacetName = "price"

// 商品検索
type SearchViewService struct {
	productRepo repo.ProductRepository
	images      ImageProvider
	productURL  factory.ProductURLProvider
	localizer   Localizer
	settings    []search.FacetSetting
	providers   map[viewmodel.FacetType]search.SelectedFacetProvider
	logger      *zap.Logger
}

// DI
func NewSearchViewService(
	productRepo repo.ProductRepository,
	images ImageProvider,
	productURL factory.ProductURLProvider,
	localizer Localizer,
	settings []search.FacetSetting,
	providers map[viewmodel.FacetType]search.SelectedFacetProvider,
	logger *zap.Logger,
) *SearchViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchViewService{
		productRepo: productRepo,
		images:      images,
		productURL:  productURL,
		localizer:   localizer,
		settings:    settings,
		providers:   providers,
		logger:      logger,
	}
}

func (s *SearchViewService) Search(ctx context.Context, p *param.SearchParam) (*viewmodel.SearchViewModel, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	q := &param.SearchProductsParam{
		Scope:         p.Scope,
		CultureInfo:   p.CultureInfo,
		Keywords:      p.Keywords,
		SortBy:        p.SortBy,
		SortDirection: p.SortDirection,
		Page:          p.Page,
		PageSize:      p.PageSize,
	}

	selected := []viewmodel.SelectedFacet{}
	for _, f := range p.Filters {
		setting, ok := search.FindSetting(s.settings, f.Name)
		if !ok {
			s.logger.Debug("unknown facet ignored", zap.String("facet", f.Name))
			continue
		}
		fp, ok := s.providers[setting.FacetType]
		if !ok {
			continue
		}
		facets, err := fp.CreateSelectedFacetList(f, setting, p.CultureInfo)
		if err != nil {
			return nil, err
		}
		for _, sf := range facets {
			if sf.FacetType == viewmodel.FacetTypeRange && strings.EqualFold(setting.FieldName, PriceFacetName) {
				q.MinPrice = parsePrice(sf.MinimumValue)
				q.MaxPrice = parsePrice(sf.MaximumValue)
			}
		}
		selected = append(selected, facets...)
	}

	products, total, err := s.productRepo.SearchProducts(ctx, q)
	if err != nil {
		return nil, err
	}

	images, err := s.images.GetProductMainImages(ctx, dam.GetProductMainImagesParam{
		ImageSize:            "M",
		ProductImageRequests: imageRequests(products),
	})
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]dam.ProductMainImage, len(images))
	for _, img := range images {
		if _, ok := byProduct[img.ProductID]; !ok {
			byProduct[img.ProductID] = img
		}
	}

	vm := &viewmodel.SearchViewModel{
		Keywords:       p.Keywords,
		Products:       make([]viewmodel.ProductSearchViewModel, 0, len(products)),
		SelectedFacets: selected,
		TotalCount:     total,
		Page:           p.Page,
		PageSize:       p.PageSize,
		TotalPages:     totalPages(total, p.PageSize),
	}
	for _, prod := range products {
		current, regular := prod.PriceFor("")
		item := viewmodel.ProductSearchViewModel{
			ProductID:    prod.ID,
			DisplayName:  prod.DisplayName,
			Sku:          prod.Sku,
			ListPrice:    s.localizer.FormatPrice(regular, p.CultureInfo),
			DisplayPrice: s.localizer.FormatPrice(current, p.CultureInfo),
			IsOnSale: factory.IsOnSale(
				decimal.NewNullDecimal(current),
				decimal.NewNullDecimal(regular),
			),
			ProductURL: s.productURL.GetProductURL(provider.GetProductURLParam{
				CultureInfo: p.CultureInfo,
				ProductID:   prod.ID,
				ProductName: prod.DisplayName,
			}),
		}
		if img, ok := byProduct[prod.ID]; ok {
			item.ImageURL = img.ImageURL
			item.FallbackImageURL = img.FallbackImageURL
		}
		vm.Products = append(vm.Products, item)
	}
	return vm, nil
}

func imageRequests(products []model.Product) []dam.ProductImageRequest {
	reqs := make([]dam.ProductImageRequest, 0, len(products))
	for _, p := range products {
		reqs = append(reqs, dam.ProductImageRequest{ProductID: p.ID})
	}
	return reqs
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return int(pages)
}

func parsePrice(v string) decimal.NullDecimal {
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
