package requestctx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerContext_SetCustomerMarksDirty(t *testing.T) {
	id := uuid.New()
	cc := &ComposerContext{CustomerID: id, IsGuest: true}

	cc.SetCustomer(id, true)
	assert.False(t, cc.Dirty())

	cc.SetCustomer(id, false)
	assert.True(t, cc.Dirty())
	assert.False(t, cc.IsGuest)

	cc.MarkClean()
	assert.False(t, cc.Dirty())
}

func TestGetSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, Get(c))

	cc := &ComposerContext{Scope: "Canada"}
	Set(c, cc)
	got := Get(c)
	require.NotNil(t, got)
	assert.Equal(t, "Canada", got.Scope)
}
