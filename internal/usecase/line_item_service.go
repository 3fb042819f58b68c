package usecase

import (
	"context"

	"composer/internal/dam"
	"composer/internal/domain/model"
)

type LineItemService struct {
	images    ImageProvider
	imageSize string
}

// DI
func NewLineItemService(images ImageProvider, imageSize string) *LineItemService {
	return &LineItemService{images: images, imageSize: imageSize}
}

// GetImageUrls は明細の (productId, variantId) ごとに1回だけ画像を引く
func (s *LineItemService) GetImageUrls(ctx context.Context, lineItems []model.LineItem) ([]dam.ProductMainImage, error) {
	if len(lineItems) == 0 {
		return []dam.ProductMainImage{}, nil
	}

	seen := map[dam.ProductImageRequest]struct{}{}
	reqs := make([]dam.ProductImageRequest, 0, len(lineItems))
	for _, li := range lineItems {
		r := dam.ProductImageRequest{ProductID: li.ProductID, VariantID: li.VariantID}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		reqs = append(reqs, r)
	}

	return s.images.GetProductMainImages(ctx, dam.GetProductMainImagesParam{
		ImageSize:            s.imageSize,
		ProductImageRequests: reqs,
	})
}
