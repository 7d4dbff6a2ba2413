// Package http registra as rotas da API e os handlers Fiber.
package http

import "github.com/go-playground/validator/v10"

// validate instância única do validador de structs; lê as tags `validate:`
// dos DTOs de entrada.
var validate = validator.New(validator.WithRequiredStructEnabled())
