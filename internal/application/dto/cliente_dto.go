package dto

// CreateClienteRequest entrada para criar ou atualizar um cliente.
type CreateClienteRequest struct {
	Nome       string `json:"nome" validate:"required,min=1,max=200"`
	Telefone   string `json:"telefone" validate:"required,min=1,max=30"`
	Email      string `json:"email" validate:"omitempty,email"`
	Endereco   string `json:"endereco"`
	Sexo       string `json:"sexo" validate:"omitempty,oneof=M F"`
	Observacao string `json:"observacao"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email,omitempty"`
	Endereco     string `json:"endereco,omitempty"`
	Sexo         string `json:"sexo,omitempty"`
	Observacao   string `json:"observacao,omitempty"`
	DataCadastro string `json:"data_cadastro,omitempty"`
}
