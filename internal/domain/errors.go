package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado          = errors.New("recurso não encontrado")
	ErrEntradaInvalida        = errors.New("entrada inválida")
	ErrDuplicado              = errors.New("recurso duplicado")
	ErrNaoAutorizado          = errors.New("não autorizado")
	ErrCredenciaisInvalidas   = errors.New("usuário ou senha incorretos")
	ErrFonteDadosIndisponivel = errors.New("fonte de dados indisponível")
)
