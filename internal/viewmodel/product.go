package viewmodel

type ProductVariantViewModel struct {
	VariantID        string            `json:"variantId"`
	Sku              string            `json:"sku"`
	KvaValues        map[string]string `json:"kvaValues"`
	KvaDisplayValues map[string]string `json:"kvaDisplayValues"`
	ListPrice        string            `json:"listPrice"`
	DisplayPrice     string            `json:"displayPrice"`
	IsOnSale         bool              `json:"isOnSale"`
}

// 商品詳細
type ProductViewModel struct {
	ProductID        string                    `json:"productId"`
	DisplayName      string                    `json:"displayName"`
	Description      string                    `json:"description"`
	Sku              string                    `json:"sku"`
	DefinitionName   string                    `json:"definitionName"`
	Attributes       []string                  `json:"attributes"`
	ListPrice        string                    `json:"listPrice"`
	DisplayPrice     string                    `json:"displayPrice"`
	IsOnSale         bool                      `json:"isOnSale"`
	ImageURL         string                    `json:"imageUrl"`
	FallbackImageURL string                    `json:"fallbackImageUrl"`
	ProductURL       string                    `json:"productUrl"`
	Variants         []ProductVariantViewModel `json:"variants"`
}
