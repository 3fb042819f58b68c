package repository

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"composer/internal/overture"
)

func cartKey(scope string, customerID uuid.UUID, cartName string, culture language.Tag) overture.CartKey {
	return overture.CartKey{
		ScopeID:     scope,
		CustomerID:  customerID,
		CartName:    cartName,
		CultureName: culture.String(),
	}
}
