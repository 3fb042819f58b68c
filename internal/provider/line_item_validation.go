package provider

import "composer/internal/domain/model"

// ワークフロー結果から明細の有効性を判定
type LineItemValidationProvider struct{}

func NewLineItemValidationProvider() *LineItemValidationProvider {
	return &LineItemValidationProvider{}
}

// ValidateLineItem はメッセージが付いた明細を無効とする
func (p *LineItemValidationProvider) ValidateLineItem(cart *model.Cart, li model.LineItem) bool {
	if cart == nil {
		return true
	}
	for _, m := range cart.Messages {
		if m.LineItemID == li.ID {
			return false
		}
	}
	return true
}
