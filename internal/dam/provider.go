package dam

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidSettings = errors.New("invalid dam settings")

// 商品（バリエーション）のメイン画像
type ProductMainImage struct {
	ProductID        string `json:"productId"`
	VariantID        string `json:"variantId"`
	ImageURL         string `json:"imageUrl"`
	FallbackImageURL string `json:"fallbackImageUrl"`
}

// 画像を引く商品の組
type ProductImageRequest struct {
	ProductID string
	VariantID string
}

type GetProductMainImagesParam struct {
	ImageSize            string
	ProductImageRequests []ProductImageRequest
}

// 画像サーバの設定
type Settings struct {
	ServerURL        string
	ImageFolderName  string
	FallbackImageURL string
}

// 命名規約で画像URLを組み立てる
// {server}/{folder}/{productId}[_{variantId}]_{size}.jpg
type ConventionBasedProvider struct {
	baseURL  string
	fallback string
}

// DI
func NewConventionBasedProvider(s Settings) (*ConventionBasedProvider, error) {
	if strings.TrimSpace(s.ServerURL) == "" {
		return nil, fmt.Errorf("%w: server url is required", ErrInvalidSettings)
	}
	u, err := url.Parse(strings.TrimRight(s.ServerURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: server url %q", ErrInvalidSettings, s.ServerURL)
	}

	base := u.String()
	if folder := strings.Trim(s.ImageFolderName, "/"); folder != "" {
		base += "/" + folder
	}
	return &ConventionBasedProvider{baseURL: base, fallback: s.FallbackImageURL}, nil
}

// GetProductMainImages は要求順に画像を返す
func (p *ConventionBasedProvider) GetProductMainImages(_ context.Context, param GetProductMainImagesParam) ([]ProductMainImage, error) {
	size := param.ImageSize
	if size == "" {
		size = "M"
	}

	images := make([]ProductMainImage, 0, len(param.ProductImageRequests))
	for _, r := range param.ProductImageRequests {
		if r.ProductID == "" {
			continue
		}
		images = append(images, ProductMainImage{
			ProductID:        r.ProductID,
			VariantID:        r.VariantID,
			ImageURL:         p.imageURL(r.ProductID, r.VariantID, size),
			FallbackImageURL: p.fallback,
		})
	}
	return images, nil
}

func (p *ConventionBasedProvider) imageURL(productID, variantID, size string) string {
	name := url.PathEscape(productID)
	if variantID != "" {
		name += "_" + url.PathEscape(variantID)
	}
	return fmt.Sprintf("%s/%s_%s.jpg", p.baseURL, name, size)
}
