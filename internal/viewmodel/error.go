package viewmodel

type ErrorViewModel struct {
	ErrorCode             string `json:"errorCode"`
	ErrorMessage          string `json:"errorMessage"`
	LocalizedErrorMessage string `json:"localizedErrorMessage"`
}

type ErrorsViewModel struct {
	Errors []ErrorViewModel `json:"errors"`
}
