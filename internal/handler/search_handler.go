package handler

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"composer/internal/param"
	"composer/internal/viewmodel"
)

type SearchService interface {
	Search(ctx context.Context, p *param.SearchParam) (*viewmodel.SearchViewModel, error)
}

// 商品検索のHTTP
type SearchHandler struct {
	service SearchService
}

// DI
func NewSearchHandler(search SearchService) *SearchHandler {
	return &SearchHandler{service: search}
}

func (h *SearchHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/search", h.search)
}

// GET /api/search?keywords=&page=&pageSize=&sortBy=&sortDirection=&filter[price]=10|50
func (h *SearchHandler) search(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// pageSize（default 20）
	pageSize := 20
	if v := c.QueryParam("pageSize"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pageSize"})
		}
		pageSize = l
	}

	out, err := h.service.Search(c.Request().Context(), &param.SearchParam{
		Scope:         cc.Scope,
		CultureInfo:   cc.CultureInfo,
		Keywords:      c.QueryParam("keywords"),
		SortBy:        c.QueryParam("sortBy"),
		SortDirection: c.QueryParam("sortDirection"),
		Page:          page,
		PageSize:      pageSize,
		Filters:       filtersFrom(c),
		BaseURL:       cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// filter[name]=value を名前順に集める
func filtersFrom(c echo.Context) []param.SearchFilter {
	filters := []param.SearchFilter{}
	for key, values := range c.QueryParams() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(key, "filter["), "]")
		if name == "" {
			continue
		}
		for _, v := range values {
			if v == "" {
				continue
			}
			filters = append(filters, param.SearchFilter{Name: name, Value: v})
		}
	}
	sort.SliceStable(filters, func(i, j int) bool { return filters[i].Name < filters[j].Name })
	return filters
}
