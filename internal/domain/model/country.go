package model

import "strings"

// 国と地域（州・県）
// 表示名は culture 名 → 名前
type Country struct {
	IsoCode         string            `gorm:"type:varchar(10);primaryKey" json:"isoCode"`
	DisplayNames    map[string]string `gorm:"serializer:json" json:"displayNames"`
	PostalCodeRegex string            `gorm:"type:varchar(255)" json:"postalCodeRegex"`
	PhoneRegex      string            `gorm:"type:varchar(255)" json:"phoneRegex"`
	IsSupported     bool              `gorm:"not null" json:"isSupported"`
	Regions         []Region          `gorm:"foreignKey:CountryIsoCode;references:IsoCode;constraint:OnDelete:CASCADE" json:"regions"`
}

type Region struct {
	ID             int64             `gorm:"primaryKey;autoIncrement" json:"-"`
	CountryIsoCode string            `gorm:"type:varchar(10);not null;uniqueIndex:ux_region" json:"countryIsoCode"`
	IsoCode        string            `gorm:"type:varchar(10);not null;uniqueIndex:ux_region" json:"isoCode"`
	DisplayNames   map[string]string `gorm:"serializer:json" json:"displayNames"`
	IsSupported    bool              `gorm:"not null" json:"isSupported"`
}

// culture 名、次に言語部分で探す（無ければ空）
func LocalizedName(names map[string]string, cultureName string) string {
	if name := names[cultureName]; name != "" {
		return name
	}
	if i := strings.IndexByte(cultureName, '-'); i > 0 {
		if name := names[cultureName[:i]]; name != "" {
			return name
		}
	}
	return ""
}

// 地域コードで探す（大文字小文字は区別しない）
func (c *Country) FindRegion(isoCode string) *Region {
	if c == nil {
		return nil
	}
	for i := range c.Regions {
		if strings.EqualFold(c.Regions[i].IsoCode, isoCode) {
			return &c.Regions[i]
		}
	}
	return nil
}
