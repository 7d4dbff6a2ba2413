package entity

// Cliente representa um cliente cadastrado no PDV.
// DataCadastro é ISO-8601 UTC em texto; o formato ordena lexicograficamente.
type Cliente struct {
	ID           string
	Nome         string
	Telefone     string
	Email        string
	Endereco     string
	Sexo         string
	Observacao   string
	DataCadastro string
}
