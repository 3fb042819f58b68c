package db

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"composer/internal/domain/model"
)

type SeedOptions struct {
	Scope       string
	CultureName string
	Currency    string
	Location    string
}

// Seed は開発用の初期データ（スコープ単位で1回だけ）
func Seed(ctx context.Context, gdb *gorm.DB, opts SeedOptions) error {
	if opts.Location == "" {
		opts.Location = "MAIN"
	}

	scope := model.Scope{
		ID:                         opts.Scope,
		DefaultCultureName:         opts.CultureName,
		CurrencyCode:               opts.Currency,
		IsInventoryEnabled:         true,
		DefaultInventoryLocationID: opts.Location,
	}

	products := []model.Product{
		{
			ID:          "BIKE-ROAD",
			ScopeID:     opts.Scope,
			DisplayName: "Road Bike",
			Sku:         "BIKE-ROAD",
			ListPrice:   decimal.RequireFromString("1299.99"),
			SalePrice:   decimal.NewNullDecimal(decimal.RequireFromString("1099.99")),
			IsActive:    true,
			Variants: []model.Variant{
				{ID: "BIKE-ROAD-54", Sku: "BIKE-ROAD-54", KvaValues: map[string]string{"Size": "54"}, KvaDisplayValues: map[string]string{"Size": "54 cm"}, IsActive: true},
				{ID: "BIKE-ROAD-58", Sku: "BIKE-ROAD-58", KvaValues: map[string]string{"Size": "58"}, KvaDisplayValues: map[string]string{"Size": "58 cm"}, IsActive: true},
			},
			Fees: []model.ProductFee{
				{Name: "Eco fee", Amount: decimal.RequireFromString("2.50"), CalculationRule: model.FeePerUnit},
			},
		},
		{
			ID:          "HELMET",
			ScopeID:     opts.Scope,
			DisplayName: "Casque Vélo",
			Sku:         "HELMET",
			ListPrice:   decimal.RequireFromString("89.00"),
			IsActive:    true,
		},
	}

	inventory := []model.InventoryItem{
		{ScopeID: opts.Scope, Sku: "BIKE-ROAD-54", InventoryLocationID: opts.Location, Quantity: 5},
		{ScopeID: opts.Scope, Sku: "BIKE-ROAD-58", InventoryLocationID: opts.Location, AllowBackOrder: true, BackOrderLimit: 10},
		{ScopeID: opts.Scope, Sku: "HELMET", InventoryLocationID: opts.Location},
	}

	promotions := []model.Promotion{
		{ScopeID: opts.Scope, Code: "WELCOME10", Name: "10% off your order", DiscountPercent: decimal.NewFromInt(10), IsActive: true},
		{ScopeID: opts.Scope, Code: "HELMET5", Name: "$5 off helmets", DiscountAmount: decimal.NewFromInt(5), TargetSku: "HELMET", IsActive: true},
	}

	lookups := []model.Lookup{{
		Name: "Gender",
		Values: []model.LookupValue{
			{Value: "Female", SortOrder: 1, DisplayNames: map[string]string{"en-CA": "Female", "fr-CA": "Femme"}},
			{Value: "Male", SortOrder: 2, DisplayNames: map[string]string{"en-CA": "Male", "fr-CA": "Homme"}},
		},
	}}

	countries := []model.Country{{
		IsoCode:         "CA",
		DisplayNames:    map[string]string{"en": "Canada", "fr": "Canada"},
		PostalCodeRegex: `^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`,
		PhoneRegex:      `^\+?1?[ -]?\(?\d{3}\)?[ -]?\d{3}[ -]?\d{4}$`,
		IsSupported:     true,
		Regions: []model.Region{
			{IsoCode: "AB", DisplayNames: map[string]string{"en": "Alberta", "fr": "Alberta"}, IsSupported: true},
			{IsoCode: "BC", DisplayNames: map[string]string{"en": "British Columbia", "fr": "Colombie-Britannique"}, IsSupported: true},
			{IsoCode: "ON", DisplayNames: map[string]string{"en": "Ontario", "fr": "Ontario"}, IsSupported: true},
			{IsoCode: "QC", DisplayNames: map[string]string{"en": "Quebec", "fr": "Québec"}, IsSupported: true},
			{IsoCode: "NU", DisplayNames: map[string]string{"en": "Nunavut", "fr": "Nunavut"}},
		},
	}}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Scope{}).Where("id = ?", opts.Scope).Count(&n).Error; err != nil {
			return err
		}
		// 既にあるスコープには触らない
		if n > 0 {
			return nil
		}

		if err := tx.Create(&scope).Error; err != nil {
			return fmt.Errorf("seed scope: %w", err)
		}
		for i := range products {
			if err := tx.Model(&model.Product{}).Where("id = ?", products[i].ID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if err := tx.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", products[i].ID, err)
			}
		}
		if err := tx.Create(&inventory).Error; err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
		if err := tx.Create(&promotions).Error; err != nil {
			return fmt.Errorf("seed promotions: %w", err)
		}
		// 一覧はスコープ共通
		for i := range lookups {
			if err := tx.Model(&model.Lookup{}).Where("name = ?", lookups[i].Name).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if err := tx.Create(&lookups[i]).Error; err != nil {
				return fmt.Errorf("seed lookup %s: %w", lookups[i].Name, err)
			}
		}
		for i := range countries {
			if err := tx.Model(&model.Country{}).Where("iso_code = ?", countries[i].IsoCode).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if err := tx.Create(&countries[i]).Error; err != nil {
				return fmt.Errorf("seed country %s: %w", countries[i].IsoCode, err)
			}
		}
		return nil
	})
}
