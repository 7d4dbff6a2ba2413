package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo de confirmação simples (ex: exclusões).
type MessageResponse struct {
	Message string `json:"message"`
}
