package dto

type ShareCodeResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count,omitempty"`
}
