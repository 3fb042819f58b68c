package param

import "golang.org/x/text/language"

// 国の取得（地域も同じ引数）
type RetrieveCountryParam struct {
	IsoCode     string
	CultureInfo language.Tag
}

// 違反は引数名 param で返す
func (p *RetrieveCountryParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	err := Check("param").
		NotBlank("IsoCode", p.IsoCode).
		Culture("CultureInfo", p.CultureInfo).
		Err()
	if err != nil {
		return &ArgumentError{ParamName: "param", Message: err.Error()}
	}
	return nil
}

type RetrieveRegionDisplayNameParam struct {
	IsoCode     string
	RegionCode  string
	CultureInfo language.Tag
}

func (p *RetrieveRegionDisplayNameParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("IsoCode", p.IsoCode).
		NotBlank("RegionCode", p.RegionCode).
		Culture("CultureInfo", p.CultureInfo).
		Err()
}
