package viewmodel

type CountryViewModel struct {
	IsoCode         string `json:"isoCode"`
	CountryName     string `json:"countryName"`
	PostalCodeRegex string `json:"postalCodeRegex"`
	PhoneRegex      string `json:"phoneRegex"`
}

type RegionViewModel struct {
	IsoCode string `json:"isoCode"`
	Name    string `json:"name"`
}
