package model

// 顧客向けの選択肢一覧（性別・都道府県など）
type Lookup struct {
	Name   string        `gorm:"type:varchar(100);primaryKey" json:"name"`
	Values []LookupValue `gorm:"foreignKey:LookupName;constraint:OnDelete:CASCADE" json:"values"`
}

type LookupValue struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	LookupName string `gorm:"type:varchar(100);not null;index" json:"-"`
	Value      string `gorm:"type:varchar(100);not null" json:"value"`
	SortOrder  int    `gorm:"not null;default:0" json:"sortOrder"`
	// culture名 → 表示名
	DisplayNames map[string]string `gorm:"serializer:json" json:"displayNames"`
}

// cultureの表示名（無ければ値そのもの）
func (v LookupValue) DisplayName(cultureName string) string {
	if name, ok := v.DisplayNames[cultureName]; ok && name != "" {
		return name
	}
	return v.Value
}
