package localization

import "golang.org/x/text/language"

// カテゴリ -> キー -> 言語ごとの書式
// 書式は fmt 形式（%s など）
var resources = map[string]map[string]map[language.Tag]string{
	"ShoppingCart": {
		"F_PromoCodeSucces": {
			language.English: "The promo code %s has been applied to your cart.",
			language.French:  "Le code promotionnel %s a été appliqué à votre panier.",
		},
		"F_InvalidCoupon": {
			language.English: "The promo code %s is not valid for your cart.",
			language.French:  "Le code promotionnel %s n'est pas valide pour votre panier.",
		},
		"L_Free": {
			language.English: "Free",
			language.French:  "Gratuit",
		},
	},
	"MyAccount": {
		"F_AccountRequiresApproval": {
			language.English: "Your account %s must be approved before you can sign in.",
			language.French:  "Votre compte %s doit être approuvé avant de pouvoir vous connecter.",
		},
		"L_InvalidCredentials": {
			language.English: "The username or password is incorrect.",
			language.French:  "Le nom d'utilisateur ou le mot de passe est incorrect.",
		},
	},
	"List-Search": {
		"F_PriceRange": {
			language.English: "%s - %s",
			language.French:  "%s - %s",
		},
		"F_PriceFrom": {
			language.English: "%s and more",
			language.French:  "%s et plus",
		},
	},
	"Orders": {
		"L_OrderStatus_New": {
			language.English: "New",
			language.French:  "Nouvelle",
		},
		"L_OrderStatus_Completed": {
			language.English: "Completed",
			language.French:  "Complétée",
		},
		"L_OrderStatus_Canceled": {
			language.English: "Canceled",
			language.French:  "Annulée",
		},
	},
	"Errors": {
		"L_NotFound": {
			language.English: "The requested item could not be found.",
			language.French:  "L'élément demandé est introuvable.",
		},
		"L_LineItemNotFound": {
			language.English: "This item is no longer in your cart.",
			language.French:  "Cet article n'est plus dans votre panier.",
		},
		"L_ProductNotFound": {
			language.English: "This product is no longer available.",
			language.French:  "Ce produit n'est plus disponible.",
		},
		"L_InsufficientQuantity": {
			language.English: "The requested quantity is not available.",
			language.French:  "La quantité demandée n'est pas disponible.",
		},
		"L_InvalidOperation": {
			language.English: "This operation cannot be completed.",
			language.French:  "Cette opération ne peut pas être effectuée.",
		},
		"L_EmptyCart": {
			language.English: "Your cart is empty.",
			language.French:  "Votre panier est vide.",
		},
		"L_InvalidCart": {
			language.English: "Some items in your cart are no longer available.",
			language.French:  "Certains articles de votre panier ne sont plus disponibles.",
		},
		"L_OrderNotFound": {
			language.English: "The order could not be found.",
			language.French:  "La commande est introuvable.",
		},
		"L_CountryNotFound": {
			language.English: "The country could not be found.",
			language.French:  "Le pays est introuvable.",
		},
		"L_ScopeNotFound": {
			language.English: "The store could not be found.",
			language.French:  "La boutique est introuvable.",
		},
	},
}
