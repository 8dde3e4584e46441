package model

type SolveResponse struct {
	RequestId   string            `json:"request_id"`
	Settings    []VoicingSettings `json:"settings"`
	Notes       []Notes           `json:"notes"`
	Movement    float64           `json:"movement"`
	Fallback    bool              `json:"fallback"`
	Comparisons int               `json:"comparisons"`
}

type StyleResponse struct {
	Style   Style   `json:"style"`
	Notes   Notes   `json:"notes"`
	Penalty float64 `json:"penalty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
