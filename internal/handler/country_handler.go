package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"composer/internal/param"
	"composer/internal/viewmodel"
)

type CountryService interface {
	RetrieveCountry(ctx context.Context, p *param.RetrieveCountryParam) (*viewmodel.CountryViewModel, error)
	RetrieveRegions(ctx context.Context, p *param.RetrieveCountryParam) ([]viewmodel.RegionViewModel, error)
	RetrieveRegionDisplayName(ctx context.Context, p *param.RetrieveRegionDisplayNameParam) (string, error)
}

// /api/country のHTTP（住所フォーム用）
type CountryHandler struct {
	countries CountryService
}

// DI
func NewCountryHandler(countries CountryService) *CountryHandler {
	return &CountryHandler{countries: countries}
}

type RegionDisplayNameResponse struct {
	IsoCode string `json:"isoCode"`
	Name    string `json:"name"`
}

func (h *CountryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/country")

	g.GET("/:isoCode", h.getCountry)
	g.GET("/:isoCode/regions", h.getRegions)
	g.GET("/:isoCode/regions/:regionCode", h.getRegionDisplayName)
}

func (h *CountryHandler) getCountry(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	out, err := h.countries.RetrieveCountry(c.Request().Context(), &param.RetrieveCountryParam{
		IsoCode:     c.Param("isoCode"),
		CultureInfo: cc.CultureInfo,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CountryHandler) getRegions(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	out, err := h.countries.RetrieveRegions(c.Request().Context(), &param.RetrieveCountryParam{
		IsoCode:     c.Param("isoCode"),
		CultureInfo: cc.CultureInfo,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CountryHandler) getRegionDisplayName(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	regionCode := c.Param("regionCode")
	name, err := h.countries.RetrieveRegionDisplayName(c.Request().Context(), &param.RetrieveRegionDisplayNameParam{
		IsoCode:     c.Param("isoCode"),
		RegionCode:  regionCode,
		CultureInfo: cc.CultureInfo,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, RegionDisplayNameResponse{IsoCode: regionCode, Name: name})
}
