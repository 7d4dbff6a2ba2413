package dto

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido para o operador do PDV.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
