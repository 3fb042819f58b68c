package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/param"
	"composer/internal/viewmodel"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type inventoryFixture struct {
	inventory *MockInventoryRepository
	settings  *MockProductSettingsRepository
	locations *MockInventoryLocationProvider
	svc       *InventoryViewService
}

func newInventoryFixture(now time.Time) inventoryFixture {
	inv := new(MockInventoryRepository)
	settings := new(MockProductSettingsRepository)
	locations := new(MockInventoryLocationProvider)
	svc := NewInventoryViewService(
		inv,
		NewProductSettingsViewService(settings),
		locations,
		fixedClock{t: now},
		[]model.InventoryStatus{model.InventoryStatusInStock},
		nil,
	)
	return inventoryFixture{inventory: inv, settings: settings, locations: locations, svc: svc}
}

func availability(sku string, statuses ...model.InventoryStatus) model.InventoryItemAvailability {
	a := model.InventoryItemAvailability{
		Identifier: model.InventoryItemIdentifier{Sku: sku, InventoryLocationID: "WH1"},
	}
	for _, st := range statuses {
		a.Statuses = append(a.Statuses, model.InventoryItemStatus{Status: st, Quantity: 1})
	}
	return a
}

// =====================
// FindSkusAvailableToSell
// =====================

func TestInventoryViewService_FindSkusAvailableToSell_Filters(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("EDT", -4*3600))
	f := newInventoryFixture(now)
	ctx := context.Background()

	f.settings.On("GetProductSettings", ctx, &param.GetProductSettingsParam{Scope: "Canada"}).
		Return(&model.ProductSettings{IsInventoryEnabled: true}, nil).Once()
	f.locations.On("GetDefaultInventoryLocationID", ctx, "Canada").Return("WH1", nil).Once()
	f.inventory.On("FindInventoryItemStatus", ctx, mock.MatchedBy(func(p *param.FindInventoryItemStatusParam) bool {
		return p.InventoryLocationID == "WH1" &&
			p.Date.Equal(now) && p.Date.Location() == time.UTC &&
			len(p.Skus) == 3
	})).Return([]model.InventoryItemAvailability{
		availability("A", model.InventoryStatusInStock),
		availability("B", model.InventoryStatusOutOfStock),
		availability("C"),
	}, nil).Once()

	skus, err := f.svc.FindSkusAvailableToSell(ctx, "Canada", language.English, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, skus)
	f.inventory.AssertExpectations(t)
}

func TestInventoryViewService_FindSkusAvailableToSell_InventoryDisabled(t *testing.T) {
	f := newInventoryFixture(time.Now())
	ctx := context.Background()

	f.settings.On("GetProductSettings", ctx, mock.Anything).
		Return(&model.ProductSettings{IsInventoryEnabled: false}, nil).Once()

	skus, err := f.svc.FindSkusAvailableToSell(ctx, "Canada", language.English, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, skus)
	f.inventory.AssertNotCalled(t, "FindInventoryItemStatus", mock.Anything, mock.Anything)
	f.locations.AssertNotCalled(t, "GetDefaultInventoryLocationID", mock.Anything, mock.Anything)
}

func TestInventoryViewService_FindSkusAvailableToSell_LocationError(t *testing.T) {
	f := newInventoryFixture(time.Now())
	ctx := context.Background()

	boom := errors.New("no location")
	f.settings.On("GetProductSettings", ctx, mock.Anything).
		Return(&model.ProductSettings{IsInventoryEnabled: true}, nil).Once()
	f.locations.On("GetDefaultInventoryLocationID", ctx, "Canada").Return("", boom).Once()

	_, err := f.svc.FindSkusAvailableToSell(ctx, "Canada", language.English, []string{"A"})
	assert.ErrorIs(t, err, boom)
}

// =====================
// FindInventoryItemStatus
// =====================

func TestInventoryViewService_FindInventoryItemStatus_Maps(t *testing.T) {
	f := newInventoryFixture(time.Now())
	ctx := context.Background()

	p := &param.FindInventoryItemStatusParam{Scope: "Canada", Skus: []string{"A"}, InventoryLocationID: "WH1"}
	f.inventory.On("FindInventoryItemStatus", ctx, p).Return([]model.InventoryItemAvailability{
		availability("A", model.InventoryStatusBackOrder, model.InventoryStatusInStock),
	}, nil).Once()

	items, err := f.svc.FindInventoryItemStatus(ctx, p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Identifier.Sku)
	assert.Equal(t, "WH1", items[0].Identifier.InventoryLocationID)
	require.Len(t, items[0].Statuses, 2)
	assert.Equal(t, "BackOrder", items[0].Statuses[0].Status)
}

func TestSkusAvailableToSell_FirstStatusOnly(t *testing.T) {
	items := []viewmodel.InventoryItemAvailabilityViewModel{
		{
			Identifier: viewmodel.InventoryItemIdentifierViewModel{Sku: "X"},
			Statuses:   []viewmodel.InventoryItemStatusViewModel{{Status: "OutOfStock"}, {Status: "InStock"}},
		},
		{
			Identifier: viewmodel.InventoryItemIdentifierViewModel{Sku: "Y"},
			Statuses:   []viewmodel.InventoryItemStatusViewModel{{Status: "PreOrder"}},
		},
	}

	got := SkusAvailableToSell([]model.InventoryStatus{model.InventoryStatusInStock, model.InventoryStatusPreOrder}, items)
	assert.Equal(t, []string{"Y"}, got)

	assert.Empty(t, SkusAvailableToSell(nil, items))
}
