package model

// ShortenRequest представляет структуру запроса на сокращение URL.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ErrorResponse тело ответа с описанием ошибки.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// VersionResponse ответ /info/version.
type VersionResponse struct {
	API string `json:"api"`
	Go  string `json:"go"`
}
