package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NetworkResponse una entrada de la tabla de redes soportadas.
type NetworkResponse struct {
	ChainID uint64 `json:"chainId"`
	Code    string `json:"code"`
}

// PreviewResponse proyección OG decodificada (para clientes que consultan
// /api/preview en JSON en lugar del HTML de unfurl).
type PreviewResponse struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Network  string `json:"network"`
	From     string `json:"from,omitempty"`
	Due      string `json:"due,omitempty"`
}
