package viewmodel

type WishListViewModel struct {
	Items         []LineItemDetailViewModel `json:"items"`
	TotalQuantity int                       `json:"totalQuantity"`
	IsEmpty       bool                      `json:"isEmpty"`
	SignInURL     string                    `json:"signInUrl"`
}
