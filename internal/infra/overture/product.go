package overture

import (
	"context"
	"strings"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

func (b *Backend) GetProduct(ctx context.Context, req overture.GetProductRequest) (*model.Product, error) {
	var p model.Product
	err := b.db.WithContext(ctx).
		Preload("Variants").
		Preload("Fees").
		Where("id = ? AND scope_id = ?", req.ProductID, req.ScopeID).
		First(&p).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeProductNotFound, "product "+req.ProductID+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *Backend) GetProductDefinition(ctx context.Context, req overture.GetProductDefinitionRequest) (*model.ProductDefinition, error) {
	var def model.ProductDefinition
	err := b.db.WithContext(ctx).Where("name = ?", req.Name).First(&def).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeDefinitionNotFound, "product definition "+req.Name+" not found")
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// 商品とバリエーションの価格
func (b *Backend) CalculatePrices(ctx context.Context, req overture.CalculatePricesRequest) ([]model.ProductPrice, error) {
	products, err := b.productsByID(ctx, req.ScopeID, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	prices := make([]model.ProductPrice, 0, len(products))
	for i := range products {
		p := &products[i]
		current, regular := p.PriceFor("")
		pp := model.ProductPrice{ProductID: p.ID, DefaultPrice: regular, Price: current}
		for _, v := range p.Variants {
			vc, vr := p.PriceFor(v.ID)
			pp.VariantPrices = append(pp.VariantPrices, model.VariantPrice{VariantID: v.ID, DefaultPrice: vr, Price: vc})
		}
		prices = append(prices, pp)
	}
	return prices, nil
}

func (b *Backend) GetEffectivePrices(ctx context.Context, req overture.GetEffectivePricesRequest) ([]model.EffectivePriceEntryInfo, error) {
	products, err := b.productsByID(ctx, req.ScopeID, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	out := make([]model.EffectivePriceEntryInfo, 0, len(products))
	for i := range products {
		current, regular := products[i].PriceFor("")
		out = append(out, model.EffectivePriceEntryInfo{
			ProductID:    products[i].ID,
			CurrentPrice: current,
			RegularPrice: regular,
		})
	}
	return out, nil
}

// 公開商品のみを、検索/価格帯/ソート/ページング付きで返す。
func (b *Backend) SearchProducts(ctx context.Context, req overture.SearchProductsRequest) (*overture.SearchProductsResult, error) {
	var products []model.Product
	var total int64

	tx := b.db.WithContext(ctx).Model(&model.Product{}).
		Where("scope_id = ? AND is_active = ?", req.ScopeID, true)

	if kw := strings.TrimSpace(req.Keywords); kw != "" {
		like := "%" + kw + "%"
		tx = tx.Where("display_name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", like, like, like)
	}

	// 販売価格があればそちら
	const effectivePrice = "COALESCE(sale_price, list_price)"
	if req.MinPrice.Valid {
		tx = tx.Where(effectivePrice+" >= ?", req.MinPrice.Decimal)
	}
	if req.MaxPrice.Valid {
		tx = tx.Where(effectivePrice+" <= ?", req.MaxPrice.Decimal)
	}

	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	desc := strings.EqualFold(req.SortDirection, "desc")
	switch strings.ToLower(req.SortBy) {
	case "price":
		if desc {
			tx = tx.Order(effectivePrice + " desc").Order("id desc")
		} else {
			tx = tx.Order(effectivePrice + " asc").Order("id asc")
		}
	case "name", "displayname":
		if desc {
			tx = tx.Order("display_name desc").Order("id desc")
		} else {
			tx = tx.Order("display_name asc").Order("id asc")
		}
	default:
		tx = tx.Order("created_at desc").Order("id desc")
	}

	page, size := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > overture.MaxSearchPageSize {
		size = overture.MaxSearchPageSize
	}

	if err := tx.Preload("Variants").Offset((page - 1) * size).Limit(size).Find(&products).Error; err != nil {
		return nil, err
	}

	return &overture.SearchProductsResult{Products: products, TotalCount: total}, nil
}

func (b *Backend) productsByID(ctx context.Context, scopeID string, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	var products []model.Product
	err := b.db.WithContext(ctx).
		Preload("Variants").
		Where("scope_id = ? AND id IN ?", scopeID, ids).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
