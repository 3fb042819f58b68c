package usecase

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"composer/internal/domain/model"
	"composer/internal/param"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

// 国と地域の表示名
type CountryViewService struct {
	countryRepo repo.CountryRepository
	logger      *zap.Logger
}

// DI
func NewCountryViewService(countryRepo repo.CountryRepository, logger *zap.Logger) *CountryViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CountryViewService{countryRepo: countryRepo, logger: logger}
}

func (s *CountryViewService) RetrieveCountry(ctx context.Context, p *param.RetrieveCountryParam) (*viewmodel.CountryViewModel, error) {
	c, err := s.country(ctx, p)
	if err != nil {
		return nil, err
	}
	return &viewmodel.CountryViewModel{
		IsoCode:         c.IsoCode,
		CountryName:     countryName(c, p.CultureInfo),
		PostalCodeRegex: c.PostalCodeRegex,
		PhoneRegex:      c.PhoneRegex,
	}, nil
}

// RetrieveRegions は対応地域だけを表示名の順で返す
func (s *CountryViewService) RetrieveRegions(ctx context.Context, p *param.RetrieveCountryParam) ([]viewmodel.RegionViewModel, error) {
	c, err := s.country(ctx, p)
	if err != nil {
		return nil, err
	}

	out := make([]viewmodel.RegionViewModel, 0, len(c.Regions))
	for _, r := range c.Regions {
		if !r.IsSupported {
			continue
		}
		out = append(out, viewmodel.RegionViewModel{IsoCode: r.IsoCode, Name: regionName(r, p.CultureInfo)})
	}

	col := collate.New(p.CultureInfo, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

// 地域コードの表示名（住所の表示用）
func (s *CountryViewService) RetrieveRegionDisplayName(ctx context.Context, p *param.RetrieveRegionDisplayNameParam) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	c, err := s.country(ctx, &param.RetrieveCountryParam{IsoCode: p.IsoCode, CultureInfo: p.CultureInfo})
	if err != nil {
		return "", err
	}
	r := c.FindRegion(p.RegionCode)
	if r == nil {
		return "", NewHTTPError(http.StatusNotFound, "region not found")
	}
	return regionName(*r, p.CultureInfo), nil
}

func (s *CountryViewService) country(ctx context.Context, p *param.RetrieveCountryParam) (*model.Country, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c, err := s.countryRepo.RetrieveCountry(ctx, p)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, repo.ErrNotFound
	}
	return c, nil
}

// 登録名 → 標準の地域名 → ISOコード
func countryName(c *model.Country, culture language.Tag) string {
	if name := model.LocalizedName(c.DisplayNames, culture.String()); name != "" {
		return name
	}
	if region, err := language.ParseRegion(c.IsoCode); err == nil {
		// 未対応の言語は nil
		if namer := display.Regions(culture); namer != nil {
			if name := namer.Name(region); name != "" {
				return name
			}
		}
	}
	return strings.ToUpper(c.IsoCode)
}

func regionName(r model.Region, culture language.Tag) string {
	if name := model.LocalizedName(r.DisplayNames, culture.String()); name != "" {
		return name
	}
	return r.IsoCode
}
